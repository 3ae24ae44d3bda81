package report

// Summary accumulates per-run counters. The traversal driver fills it
// in as files are handled; under dry run the update counters reflect
// intended writes.
type Summary struct {
	FoldersSeen     int
	FilesSeen       int
	FilesSkipped    int
	NonImages       int
	EmbeddedUpdated int
	ModifiedUpdated int
	Unresolved      int
	Errors          int
}
