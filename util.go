package tailsort

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// returns names of all variables
func getAllVars(data string) []string {
	var values []string
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// validateTemplate checks that template compiles and only uses known placeholders
func validateTemplate(template string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	var unknown []string
	for _, v := range getAllVars(template) {
		if !contains(templateVars, v) {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown template variables `%v` (available: %v)", strings.Join(unknown, ","), strings.Join(templateVars, ","))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// renderGroups writes one line per category
func renderGroups(groups []Group) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, g.Category+": "+strings.Join(g.Classes, " "))
	}
	return strings.Join(lines, "\n")
}
