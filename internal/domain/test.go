package domain

// Test represents one discovered test program
type Test struct {
	Identifier  string // Package-qualified dotted name, also the JVM entry point
	SrcDir      string // Source root the test was discovered under
	Baseline    string // Recorded expected output, if any
	HasBaseline bool   // Whether a baseline file existed at enumeration time
}

// Spec pairs a test with the case name the harness reports it under
type Spec struct {
	Test     Test
	CaseName string // Derived reporting name, unique per identifier
}
