package types

// Output labels. One label per role; worker, task and segregated-interface
// variants of the same role share a label.
const (
	LabelBuildWall     = "Building a wall."
	LabelInstallWiring = "Installing electrical wiring."
	LabelInstallPipes  = "Installing pipes."
	LabelPaint         = "Painting and adding finishing touches."
	LabelInspect       = "Inspecting the construction work."

	LabelEagleFly = "Eagle flying high."
	LabelPrint    = "Printing..."
	LabelScan     = "Scanning..."
)

// Format strings for labels that carry a caller-supplied value.
const (
	FormatEmailNotification = "Sending email notification: %s"
	FormatSMSNotification   = "Sending SMS notification: %s"
	FormatAuthenticate      = "Authenticating user: %s"
	FormatSendEmail         = "Sending email to: %s, Subject: %s, Body: %s"
	FormatArea              = "Area of %s: %s"
)
