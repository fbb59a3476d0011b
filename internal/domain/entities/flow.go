package entities

// FlowNode is one step of the IVR survey script. The flow itself executes in
// the external telephony service; this graph is served to the dashboard for
// rendering only.
type FlowNode struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// Prompt is the text spoken at this step, in the survey language.
	Prompt string `json:"prompt,omitempty"`
}

// FlowEdge connects two IVR steps. Kind is "success", "error" or "store".
type FlowEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// IVRFlow is the static call-flow graph of the phone survey:
// Welcome -> Beep -> Question1..5 -> Store -> Disconnect, with every prompt
// falling back to the error-recovery step on invalid input.
func IVRFlow() ([]FlowNode, []FlowEdge) {
	nodes := []FlowNode{
		{ID: "welcome", Title: "Welcome", Subtitle: "Entry Point",
			Prompt: "مرحبًا، هذه شركة الرمز للإنشاءات. نود أن نسمع رأيك في تجربتك معنا. يرجى الرد برقم من 1 إلى 5."},
		{ID: "beep", Title: "Beep", Subtitle: "Prompt Beep.wav"},
		{ID: "question1", Title: "Question 1", Subtitle: "Custom",
			Prompt: "ما مدى رضاك عن جودة منزلك الجديد بشكل عام؟"},
		{ID: "question2", Title: "Question 2", Subtitle: "Custom",
			Prompt: "كيف تقيم احترافية واستجابة فريقنا؟"},
		{ID: "question3", Title: "Question 3", Subtitle: "Custom",
			Prompt: "هل تم تسليم منزلك في الوقت المحدد كما وعدنا؟"},
		{ID: "question4", Title: "Question 4", Subtitle: "Custom",
			Prompt: "كيف تقيم مستوى النظافة والتشطيبات عند استلام منزلك؟"},
		{ID: "question5", Title: "Question 5", Subtitle: "Custom",
			Prompt: "هل توصي بالرمز لأصدقائك وعائلتك؟"},
		{ID: "error", Title: "Error Handling", Subtitle: "Invalid Input",
			Prompt: "تم إدخال رقم خاطئ"},
		{ID: "store", Title: "Store", Subtitle: "Persist Response"},
		{ID: "disconnect", Title: "Disconnect", Subtitle: "Termination Event"},
	}

	edges := []FlowEdge{
		{ID: "welcome-beep", Source: "welcome", Target: "beep", Kind: "success"},
		{ID: "welcome-error", Source: "welcome", Target: "error", Kind: "error"},
		{ID: "beep-q1", Source: "beep", Target: "question1", Kind: "success"},
		{ID: "q1-q2", Source: "question1", Target: "question2", Kind: "success"},
		{ID: "q1-error", Source: "question1", Target: "error", Kind: "error"},
		{ID: "q2-q3", Source: "question2", Target: "question3", Kind: "success"},
		{ID: "q2-error", Source: "question2", Target: "error", Kind: "error"},
		{ID: "q3-q4", Source: "question3", Target: "question4", Kind: "success"},
		{ID: "q3-error", Source: "question3", Target: "error", Kind: "error"},
		{ID: "q4-q5", Source: "question4", Target: "question5", Kind: "success"},
		{ID: "q4-error", Source: "question4", Target: "error", Kind: "error"},
		{ID: "q5-store", Source: "question5", Target: "store", Kind: "success"},
		{ID: "q5-error", Source: "question5", Target: "error", Kind: "error"},
		{ID: "error-store", Source: "error", Target: "store", Kind: "success"},
		{ID: "store-disconnect", Source: "store", Target: "disconnect", Kind: "store"},
	}

	return nodes, edges
}
