package layout

// Element IDs shared by the page template, the generated script and the
// wasm DOM binding.
const (
	ContainerID = "wwnContainer"
	NavID       = "table-of-contents"
	SplitterID  = "splitter"
	DocID       = "document-text"
	HeaderBarID = "header-bar"
)
