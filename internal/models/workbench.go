package models

// WorkbenchConfig describes one workbench instance.
//
// The main workbench has an empty Tag and no LinkedAccountID; its starting
// balance is the net worth of the accounts included in workbenches. A tagged
// workbench (e.g. one per credit card) starts from its linked account's
// balance.
type WorkbenchConfig struct {
	Title           string `toml:"title"`
	Tag             string `toml:"tag,omitempty"`
	LinkedAccountID string `toml:"linked_account_id,omitempty"`
}

// IsMain reports whether w is the untagged main workbench.
func (w WorkbenchConfig) IsMain() bool {
	return w.Tag == ""
}
