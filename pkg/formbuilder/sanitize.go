package formbuilder

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// CellPolicy returns the sanitising policy applied to HTML cell fragments. It
// admits only the elements and attributes the builder itself emits.
func CellPolicy() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("td", "label", "input")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("name", "type", "value").OnElements("input")
		cellPolicy = policy
	})
	return cellPolicy
}
