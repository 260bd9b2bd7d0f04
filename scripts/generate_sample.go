package main

import (
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
)

// Generates a synthetic markdown-lite study document to stdout, useful
// for eyeballing renderer output and profiling the parser:
//
//	go run scripts/generate_sample.go | marklite render
func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	topics := []string{
		"Cell Respiration", "Fourier Series", "Supply and Demand",
		"Plate Tectonics", "Binary Search Trees", "The Krebs Cycle",
	}
	formulas := []string{
		`E = mc^2`, `\int_0^1 x^2\,dx = \frac{1}{3}`, `e^{i\pi} + 1 = 0`,
		`F = G\frac{m_1 m_2}{r^2}`, `\sigma = \sqrt{\frac{\sum (x_i - \mu)^2}{N}}`,
	}
	sentences := []string{
		"This process releases energy stored in chemical bonds.",
		"Note how the **rate** depends on temperature and pressure.",
		"See [the reference](https://example.com/ref) for a full derivation.",
		"The inline form $a^2 + b^2 = c^2$ appears constantly in practice.",
		"Each stage feeds its product into the next.",
	}

	var b strings.Builder
	const sections = 6

	fmt.Fprintf(&b, "# %s\n\n", topics[mr.Intn(len(topics))])
	for s := 0; s < sections; s++ {
		fmt.Fprintf(&b, "## Section %d\n\n", s+1)
		for i := 0; i < 2+mr.Intn(3); i++ {
			b.WriteString(sentences[mr.Intn(len(sentences))] + "\n\n")
		}
		switch s % 4 {
		case 0:
			fmt.Fprintf(&b, "$$\n%s\n$$\n\n", formulas[mr.Intn(len(formulas))])
		case 1:
			b.WriteString("| Term | Meaning |\n|------|---------|\n")
			for i := 0; i < 2+mr.Intn(4); i++ {
				fmt.Fprintf(&b, "| term%d | meaning%d |\n", i+1, i+1)
			}
			b.WriteString("\n")
		case 2:
			for i := 0; i < 3+mr.Intn(3); i++ {
				fmt.Fprintf(&b, "%d. Step number %d\n", i+1, i+1)
			}
			b.WriteString("\n")
		case 3:
			b.WriteString("> Key takeaway of this section.\n\n")
			fmt.Fprintf(&b, "[IMAGE: diagram for section %d]\n\n", s+1)
		}
	}

	if _, err := os.Stdout.WriteString(b.String()); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
}
