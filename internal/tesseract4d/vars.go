package tesseract4d

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks that every host satisfies Host
	_ Host = (*Recorder)(nil)
	_ Host = HostFunc(nil)
)
