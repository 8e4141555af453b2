package version

// Build-time variables. Override via -ldflags.
var (
	Version   = "dev"
	Commit    = "dev"
	BuildDate = "dev"
)

// Info describes build metadata for the mcp-server binaries.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// Get returns build info, defaulting empty fields to "dev".
func Get() Info {
	return Info{
		Version:   orDefault(Version),
		Commit:    orDefault(Commit),
		BuildDate: orDefault(BuildDate),
	}
}

func orDefault(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}
