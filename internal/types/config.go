package types

// Config is the resolved run configuration the command line hands to the
// processor. Empty InputFile or OutputFile means stdin or stdout.
type Config struct {
	Kind       DataKind
	Mode       SortMode
	InputFile  string
	OutputFile string
	// Encoding names the text encoding of input and output files,
	// "utf8" when unset.
	Encoding string
	// Verbose enables debug logging.
	Verbose bool
}
