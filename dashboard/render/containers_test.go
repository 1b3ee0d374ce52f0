package render

import (
	"context"
	"strings"
	"testing"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func webContainer() domain.Container {
	return domain.Container{
		Name:    "web",
		Image:   "docker.io/library/nginx:latest",
		Cmd:     "nginx -g daemon off;",
		Running: true,
		State:   "running",
		Actions: domain.Actions{Stop: true, Restart: true},
		RAM:     domain.RAM{Used: "10MB", Max: "100MB", Percent: 10},
		CPU:     domain.CPU{Load: "2.50%", Percent: 2.5},
		Uptime:  domain.Uptime{Days: 1, Hours: 2, Minutes: 3},
	}
}

func cellText(c Cell) string {
	var sb strings.Builder
	for _, n := range c.Content {
		switch v := n.(type) {
		case Text:
			sb.WriteString(v.Text)
		case Bold:
			sb.WriteString(v.Text)
		case Italic:
			sb.WriteString(v.Text)
		case Spinner:
			sb.WriteString(v.Label)
		case Button:
			sb.WriteString(v.Label)
		}
	}
	return sb.String()
}

func buttonsOf(rows []Row) []Button {
	var buttons []Button
	for _, r := range rows {
		for _, c := range r.Cells {
			for _, n := range c.Content {
				if b, ok := n.(Button); ok {
					buttons = append(buttons, b)
				}
			}
		}
	}
	return buttons
}

func TestContainersEmptySnapshot(t *testing.T) {
	for name, snapshot := range map[string]*domain.Snapshot{
		"nil":   nil,
		"empty": domain.EmptySnapshot(),
		"zero":  {},
	} {
		t.Run(name, func(t *testing.T) {
			table := Containers(snapshot, Options{})
			require.Len(t, table.Rows, 1)
			require.Len(t, table.Rows[0].Cells, 1)
			assert.Equal(t, NoContainersMessage, cellText(table.Rows[0].Cells[0]))
			assert.Equal(t, "100%", table.Rows[0].Cells[0].Width)
		})
	}
}

func TestContainersSingleUnnamedPodHasNoHeader(t *testing.T) {
	snapshot := &domain.Snapshot{Pods: []domain.Pod{{Containers: []domain.Container{webContainer()}}}}

	table := Containers(snapshot, Options{})
	require.Len(t, table.Rows, 3, "one container renders three rows")
	for _, r := range table.Rows {
		assert.NotEqual(t, "tr table-titles", r.Class)
	}
}

func TestContainersPodlessHeaders(t *testing.T) {
	snapshot := &domain.Snapshot{Pods: []domain.Pod{
		{Containers: []domain.Container{webContainer()}},
		{Containers: []domain.Container{webContainer()}},
		{Name: "db", Containers: []domain.Container{webContainer()}},
	}}

	table := Containers(snapshot, Options{})
	var headers []string
	for _, r := range table.Rows {
		if r.Class == "tr table-titles" {
			require.Len(t, r.Cells, 1)
			assert.True(t, r.Cells[0].Header)
			assert.Equal(t, Columns, r.Cells[0].Colspan)
			headers = append(headers, cellText(r.Cells[0]))
		}
	}
	assert.Equal(t, []string{PodlessTitle, PodlessTitle, "db"}, headers)
}

func TestPrimaryActionPriority(t *testing.T) {
	tests := []struct {
		name      string
		container domain.Container
		want      ActionKind
	}{
		{"infra beats everything", domain.Container{Infra: true, Busy: domain.Busy{State: true}, Actions: domain.Actions{Start: true, Stop: true, Restart: true}}, ActionEmpty},
		{"busy beats actions", domain.Container{Busy: domain.Busy{State: true}, Actions: domain.Actions{Start: true, Stop: true, Restart: true}}, ActionBusy},
		{"start beats stop and restart", domain.Container{Actions: domain.Actions{Start: true, Stop: true, Restart: true}}, ActionStart},
		{"stop beats restart", domain.Container{Actions: domain.Actions{Stop: true, Restart: true}}, ActionStop},
		{"restart alone", domain.Container{Actions: domain.Actions{Restart: true}}, ActionRestart},
		{"nothing legal", domain.Container{}, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryAction(&tt.container))
		})
	}
}

func TestRestartOfferedAtMostOnce(t *testing.T) {
	for _, actions := range []domain.Actions{
		{Restart: true},
		{Stop: true, Restart: true},
		{Start: true, Restart: true},
		{Start: true, Stop: true, Restart: true},
	} {
		c := domain.Container{Name: "app", State: "running", Running: true, Actions: actions}
		rows := containerRows(&c, Options{ActionPath: DefaultActionPath})

		restarts := 0
		for _, b := range buttonsOf(rows) {
			if b.Label == "Restart" {
				restarts++
			}
		}
		assert.Equal(t, 1, restarts, "actions %+v", actions)
	}
}

func TestResourcesBlankWhenStoppedOrBusy(t *testing.T) {
	stopped := webContainer()
	stopped.Running = false
	busy := webContainer()
	busy.Busy = domain.Busy{State: true, Reason: "stopping"}

	for name, c := range map[string]domain.Container{"stopped": stopped, "busy": busy} {
		t.Run(name, func(t *testing.T) {
			rows := containerRows(&c, Options{ActionPath: DefaultActionPath})
			for _, idx := range []int{2, 3, 4} {
				assert.Empty(t, cellText(rows[0].Cells[idx]))
				assert.Empty(t, cellText(rows[1].Cells[idx-1]))
			}
			for _, r := range rows {
				for _, cell := range r.Cells {
					for _, n := range cell.Content {
						assert.NotEqual(t, KindBar, n.Kind())
					}
				}
			}
		})
	}
}

func TestContainerRowsRunningExample(t *testing.T) {
	c := webContainer()
	rows := containerRows(&c, Options{ActionPath: DefaultActionPath})
	require.Len(t, rows, 3)

	first, second, third := rows[0], rows[1], rows[2]
	require.Len(t, first.Cells, Columns)
	assert.Equal(t, "web", cellText(first.Cells[0]))
	assert.Equal(t, "Running", cellText(first.Cells[1]))
	assert.Equal(t, "Uptime", cellText(first.Cells[2]))
	assert.Equal(t, "RAM:", cellText(first.Cells[3]))
	ram, ok := first.Cells[4].Content[0].(Bar)
	require.True(t, ok)
	assert.Equal(t, 10.0, ram.Percent)
	assert.Equal(t, "10MB / 100MB (10%)", ram.Title)
	assert.Equal(t, "Stop", cellText(first.Cells[5]))

	require.Len(t, second.Cells, Columns-1)
	assert.Equal(t, 2, second.Cells[0].Colspan)
	assert.Equal(t, c.Image, cellText(second.Cells[0]))
	assert.Equal(t, "1d 2h 3m", cellText(second.Cells[1]))
	assert.Equal(t, "CPU:", cellText(second.Cells[2]))
	cpu, ok := second.Cells[3].Content[0].(Bar)
	require.True(t, ok)
	assert.Equal(t, "2.50%", cpu.Title)
	assert.Equal(t, "Restart", cellText(second.Cells[4]))

	require.Len(t, third.Cells, 1)
	assert.Equal(t, Columns, third.Cells[0].Colspan)
	assert.Equal(t, c.Cmd, cellText(third.Cells[0]))
}

func TestContainerRowsBusyExample(t *testing.T) {
	c := webContainer()
	c.Busy = domain.Busy{State: true, Reason: "starting"}
	rows := containerRows(&c, Options{ActionPath: DefaultActionPath})

	assert.Equal(t, "Starting", cellText(rows[0].Cells[1]))
	for _, cell := range []Cell{rows[0].Cells[5], rows[1].Cells[4]} {
		require.Len(t, cell.Content, 1)
		spinner, ok := cell.Content[0].(Spinner)
		require.True(t, ok, "action slot should hold the busy marker")
		assert.Equal(t, BusyLabel, spinner.Label)
	}
	assert.Empty(t, buttonsOf(rows))
}

func TestContainerRowsPlaceholderWhenNoAction(t *testing.T) {
	c := domain.Container{Name: "job", State: "exited"}
	rows := containerRows(&c, Options{ActionPath: DefaultActionPath})

	assert.Equal(t, "Exited", cellText(rows[0].Cells[1]))
	assert.Equal(t, NoActionLabel, cellText(rows[0].Cells[5]))
	assert.Empty(t, cellText(rows[1].Cells[4]))
}

func TestInfraRowsWithheldByDefault(t *testing.T) {
	infra := domain.Container{Name: "abc-infra", Image: "pause", Cmd: "/pause", Infra: true, Running: true, State: "running", Actions: domain.Actions{Stop: true, Restart: true}}
	snapshot := &domain.Snapshot{Pods: []domain.Pod{{Name: "pod1", Containers: []domain.Container{infra, webContainer()}}}}

	hidden := Containers(snapshot, Options{})
	require.Len(t, hidden.Rows, 4, "header plus the web container")
	assert.Equal(t, "web", cellText(hidden.Rows[1].Cells[0]))

	shown := Containers(snapshot, Options{ShowInfra: true})
	require.Len(t, shown.Rows, 7)
	assert.Equal(t, "web", cellText(shown.Rows[1].Cells[0]), "regular containers come first")
	infraFirst := shown.Rows[4]
	assert.Equal(t, "abc-infra", cellText(infraFirst.Cells[0]))
	assert.Equal(t, InfraLabel, cellText(infraFirst.Cells[1]))
	assert.Empty(t, cellText(infraFirst.Cells[5]))
	assert.Empty(t, cellText(shown.Rows[5].Cells[4]))
	assert.Empty(t, cellText(shown.Rows[6].Cells[0]))
	assert.Empty(t, buttonsOf(shown.Rows[4:]))
}

func TestButtonClickDispatchesCapturedAction(t *testing.T) {
	ctx := context.Background()
	dispatcher := domain.NewMockDispatcher(t)
	dispatcher.EXPECT().Dispatch(mock.Anything, domain.VerbStop, "web").Return().Once()
	dispatcher.EXPECT().Dispatch(mock.Anything, domain.VerbRestart, "web").Return().Once()

	c := webContainer()
	rows := containerRows(&c, Options{Dispatcher: dispatcher, ActionPath: DefaultActionPath})
	buttons := buttonsOf(rows)
	require.Len(t, buttons, 2)
	assert.Equal(t, "/containers/web/stop", buttons[0].Path)
	assert.Equal(t, "/containers/web/restart", buttons[1].Path)
	for _, b := range buttons {
		require.NotNil(t, b.Click)
		b.Click(ctx)
	}
}

func TestFindButtonByFormPath(t *testing.T) {
	ctx := context.Background()
	dispatcher := domain.NewMockDispatcher(t)
	dispatcher.EXPECT().Dispatch(mock.Anything, domain.VerbRestart, "web").Return().Once()

	snapshot := &domain.Snapshot{Pods: []domain.Pod{{Name: "p", Containers: []domain.Container{webContainer()}}}}
	table := Containers(snapshot, Options{Dispatcher: dispatcher})

	b, ok := table.FindButton(DefaultActionPath(domain.VerbRestart, "web"))
	require.True(t, ok)
	assert.Equal(t, "Restart", b.Label)
	b.Click(ctx)

	_, ok = table.FindButton(DefaultActionPath(domain.VerbStart, "web"))
	assert.False(t, ok, "a running container offers no start")
	_, ok = messageTable(NoContainersMessage).FindButton(DefaultActionPath(domain.VerbStop, "web"))
	assert.False(t, ok)
}

func TestButtonWithoutDispatcherHasNoClick(t *testing.T) {
	c := webContainer()
	rows := containerRows(&c, Options{ActionPath: DefaultActionPath})
	for _, b := range buttonsOf(rows) {
		assert.Nil(t, b.Click)
	}
}

func TestContainersDoesNotMutateSnapshot(t *testing.T) {
	snapshot := &domain.Snapshot{Pods: []domain.Pod{{Name: "p", Containers: []domain.Container{webContainer()}}}}
	before := *snapshot
	before.Pods = append([]domain.Pod(nil), snapshot.Pods...)

	Containers(snapshot, Options{ShowInfra: true})
	assert.Equal(t, before, *snapshot)
}

func TestStatusLabelCapitalizes(t *testing.T) {
	assert.Equal(t, "Created", StatusLabel(&domain.Container{State: "created"}))
	assert.Equal(t, "", StatusLabel(&domain.Container{}))
	assert.Equal(t, "Restarting", StatusLabel(&domain.Container{State: "exited", Busy: domain.Busy{State: true, Reason: "restarting"}}))
	assert.Equal(t, InfraLabel, StatusLabel(&domain.Container{Infra: true, State: "running"}))
}

func TestActionPathEscapesName(t *testing.T) {
	assert.Equal(t, "/containers/my%20app/start", DefaultActionPath(domain.VerbStart, "my app"))
}
