package dial

// Config is the parsed dial.yaml: the ordered categories of the radial
// dial, each carrying the seed entries shown on that slice.
type Config []Category

// Category is one dial slice.
type Category struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one seed bookmark. Entries without a URL are skipped.
type Entry struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}
