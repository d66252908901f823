package main

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Properties that must hold for every emitted token stream, checked over
// a spread of valid programs.
var _ = Describe("Emitted token streams", func() {
	compile := func(src string) string {
		program, err := Compile(src)
		Expect(err).NotTo(HaveOccurred())
		return program
	}

	// bracketWalk returns the running nesting depth after each token and
	// the minimum depth seen.
	bracketWalk := func(program string) (end, min int) {
		depth := 0
		for i := 0; i < len(program); i++ {
			switch program[i] {
			case opOpen:
				depth++
			case opClose:
				depth--
			}
			if depth < min {
				min = depth
			}
		}
		return depth, min
	}

	programs := []string{
		"inc;\ndec;\ncellout;\n",
		"loop:\n    dec;\n",
		"loop:\n    loop:\n        dec;\n    inc;\ncellout;\n",
		"loop:\n    inc;\nloop:\n    dec;\n",
		"loop:\n    loop:\n        loop:\n            dec;\n", // unterminated, flushed at EOF
		"ent \"some text\";\nent input;\nclr;\n>>5;\n<<5;\n",
	}

	It("emits only the eight primitive tokens", func() {
		for _, src := range programs {
			program := compile(src)
			Expect(strings.Trim(program, "><+-[].,")).To(BeEmpty(),
				"program %q leaked non-primitive characters", program)
		}
	})

	It("keeps loop tokens balanced and properly nested", func() {
		for _, src := range programs {
			program := compile(src)
			end, min := bracketWalk(program)
			Expect(min).To(BeNumerically(">=", 0), "nesting went negative in %q", program)
			Expect(end).To(Equal(0), "brackets unbalanced in %q", program)
		}
	})

	It("encodes ent 0 as the bare clear idiom", func() {
		Expect(compile("ent 0;")).To(Equal("[-]"))
	})

	It("encodes character literals as clear plus ordinal increments", func() {
		program := compile("ent 'A';")
		Expect(strings.Count(program, "+")).To(Equal(65))
		Expect(program).To(HavePrefix("[-]"))
	})

	It("rejects literals beyond a single cell", func() {
		_, err := Compile("ent 256;")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("256"))
	})

	It("places string literals in consecutive cells with one net shift", func() {
		program := compile(`ent "AB";`)
		Expect(strings.Count(program, ">")).To(Equal(1))
		Expect(strings.Count(program, "<")).To(Equal(0))
		Expect(strings.Count(program, "+")).To(Equal(65 + 66))
	})

	It("closes a sibling loop before opening the next", func() {
		Expect(compile("loop:\n    inc;\nloop:\n    dec;\n")).To(Equal("[+][-]"))
	})
})
