package asciiart

const (
	defaultWorkers        = 1
	defaultLineTerminator = "\n"
)

// AsciiOption configures a Converter. See New().
type AsciiOption func(*Converter)

/*
WithWorkers sets how many goroutines GenerateString() uses to map rows of characters. Rows are independent, so
the output does not depend on the worker count. Values below 1 fall back to 1, which maps rows sequentially on the
calling goroutine.
*/
func WithWorkers(workers int) AsciiOption {
	if workers < 1 {
		workers = defaultWorkers
	}

	return func(c *Converter) {
		c.workers = workers
	}
}

// WithLineTerminator sets the string written after every row of characters. An empty terminator falls back to "\n".
func WithLineTerminator(terminator string) AsciiOption {
	if terminator == "" {
		terminator = defaultLineTerminator
	}

	return func(c *Converter) {
		c.lineTerminator = terminator
	}
}

// WithCRLF ends every row with "\r\n"
func WithCRLF() AsciiOption {
	return WithLineTerminator("\r\n")
}
