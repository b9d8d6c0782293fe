package controller

// Message types.
type reportStartedMsg struct {
	path string
}

type reportFinishedMsg struct {
	path        string
	config      string
	functions   int
	parseFailed bool
}

type summaryMsg struct {
	resultDir string
	reports   int
}
