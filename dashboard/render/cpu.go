package render

import (
	"strconv"

	"github.com/Gthulhu/podboard/dashboard/domain"
)

const (
	SystembusMissingMessage = "Cannot retrieve cpu data. Systembus is not loaded."
	TotalLabel              = "Total"
)

// CPU lays out one bar per reported core, preceded by a total row on
// multi-core systems.
func CPU(report *domain.CPUReport) *Table {
	if report == nil || !report.System.SystembusLoaded {
		return messageTable(SystembusMissingMessage)
	}

	table := &Table{Class: "table"}
	info := report.CPU
	if total, ok := info["cpu"]; ok {
		if _, multi := info["cpu1"]; multi {
			table.Rows = append(table.Rows, cpuRow(TotalLabel, total))
		}
	}
	for i := 0; i < domain.MaxCPUCores; i++ {
		key := "cpu" + strconv.Itoa(i)
		if load, ok := info[key]; ok {
			table.Rows = append(table.Rows, cpuRow(key, load))
		}
	}
	return table
}

func cpuRow(label string, load float64) Row {
	value := int(load)
	return Row{Class: "tr", Cells: []Cell{
		{Class: "td left", Width: "33%", Content: []Node{Text{Text: label}}},
		{Class: "td left", Content: []Node{ProgressBar(float64(value), strconv.Itoa(value)+"%")}},
	}}
}
