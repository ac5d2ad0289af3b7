package tailsort

import (
	"strconv"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// output template placeholders
const (
	VarSource  = "source"
	VarLine    = "line"
	VarInput   = "input"
	VarOutput  = "output"
	VarMessage = "message"
)

var templateVars = []string{VarSource, VarLine, VarInput, VarOutput, VarMessage}

// resultValues returns placeholder values of a result
func resultValues(r *Result, output, message string) map[string]interface{} {
	return map[string]interface{}{
		VarSource:  r.Source,
		VarLine:    strconv.Itoa(r.Line),
		VarInput:   r.Input,
		VarOutput:  output,
		VarMessage: message,
	}
}

// Replace replaces placeholders in template with values on the fly.
// values must be strings or []byte
func Replace(template string, values map[string]interface{}) string {
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, values)
}
