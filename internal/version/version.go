package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/internal/version.Date={{.Date}}
)
