package rule

// Result records a single rule violation. It is produced only for broken
// rules and carries no reference back to the rule that produced it.
type Result struct {
	Code     string
	Message  string
	Severity Severity
}

// Describe builds the canonical Result for a rule. Every evaluation path in
// the library goes through it so that code, message and severity are always
// reported consistently.
func Describe(d Descriptor) Result {
	return Result{
		Code:     d.Code(),
		Message:  d.Message(),
		Severity: d.Severity(),
	}
}
