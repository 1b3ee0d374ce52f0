package render

import (
	"bytes"
	"testing"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTMLContainerTable(t *testing.T) {
	c := webContainer()
	c.Name = "web<1>"
	snapshot := &domain.Snapshot{Pods: []domain.Pod{
		{Name: "frontend", Containers: []domain.Container{c}},
		{Containers: []domain.Container{{Name: "busy", State: "exited", Busy: domain.Busy{State: true, Reason: "starting"}}}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, Containers(snapshot, Options{})))
	out := buf.String()

	assert.Contains(t, out, `<table class="table containers">`)
	assert.Contains(t, out, `<th class="th" colspan="6">frontend</th>`)
	assert.Contains(t, out, `<th class="th" colspan="6">Podless</th>`)
	assert.Contains(t, out, `<b class="container-name">web&lt;1&gt;</b>`, "names are escaped")
	assert.Contains(t, out, `<div class="cbi-progressbar" title="10MB / 100MB (10%)"><div style="width:10.00%"></div></div>`)
	assert.Contains(t, out, `action="/containers/web%3C1%3E/stop"`)
	assert.Contains(t, out, `<button type="submit" class="btn cbi-button cbi-button-apply important">Stop</button>`)
	assert.Contains(t, out, `<div class="spinning left" style="display: inline;">Busy</div>`)
	assert.Contains(t, out, `style="padding-left: 20px; padding-bottom: 2px;"`)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestHTMLMessageTable(t *testing.T) {
	out, err := HTML(Containers(nil, Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<td class="td left" width="100%">`+NoContainersMessage+`</td>`)
}
