package chat

// replyMsg is sent when the tutor's chat reply arrives.
type replyMsg struct {
	Text string
	Err  error
}

// summaryMsg is sent when session summary generation completes.
type summaryMsg struct {
	Text string
	Err  error
}

// planMsg is sent when revision plan generation completes.
type planMsg struct {
	Text string
	Err  error
}
