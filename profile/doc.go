// Package profile records runtime profiles and execution traces of a CLI run.
//
// A [Config] registers output-path flags. A [Profiler] built from it starts
// CPU profiling and tracing before the command runs and writes the snapshot
// profiles after it returns:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(root.PersistentFlags())
//	p := cfg.NewProfiler()
//
//	err := p.Start()
//	// run the command
//	err = p.Stop()
//
// Paths left empty disable the matching profile.
package profile
