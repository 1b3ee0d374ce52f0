package render

import "fmt"

// Bar is the percentage bar primitive shared by the container and cpu tables.
type Bar struct {
	Percent float64
	Title   string
}

func (Bar) Kind() NodeKind { return KindBar }

// ProgressBar builds a bar whose width is percent, clamped to 100.
func ProgressBar(percent float64, title string) Bar {
	if percent > 100 {
		percent = 100
	}
	return Bar{Percent: percent, Title: title}
}

// Style is the inline style of the filled part of the bar.
func (b Bar) Style() string {
	return fmt.Sprintf("width:%.2f%%", b.Percent)
}
