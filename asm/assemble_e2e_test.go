package asm_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/sim6/asm"
	"github.com/ezrec/sim6/cpu"
)

const countdown = `
; is not a comment, so none appear below
limit:  .byte 10
banner: .asciiz ` + "`Go!`" + `
table:  .array 1 2 3

.code:
start:  movi sp, 700
        movi bx, @banner
        move al, ah
loop:   dec cl
        cmp cl, dl
        jzro dx
        push ax
        in al, @port
        out al, 0x1f
        inc ax
        ret
`

var _ = Describe("Assembler", func() {
	var (
		assembler *asm.Assembler
	)

	BeforeEach(func() {
		assembler = &asm.Assembler{
			Config: &asm.Config{
				DataBase: asm.DATA_BASE,
				CodeBase: asm.CODE_BASE,
				Symbols:  map[string]uint16{"port": 3},
			},
		}
	})

	assemble := func(source string) (*asm.Program, error) {
		return assembler.Parse(strings.NewReader(source))
	}

	It("should reject text that is neither data nor code", func() {
		_, err := assemble(countdown)
		Expect(err).To(MatchError(asm.ErrDirectiveUnknown(";")))

		var se asm.ErrSyntax
		Expect(err).To(BeAssignableToTypeOf(se))
		Expect(err.(asm.ErrSyntax).LineNo).To(Equal(2))
	})

	Context("with a complete program", func() {
		var (
			prog *asm.Program
		)

		BeforeEach(func() {
			source := strings.Replace(countdown, "; is not a comment, so none appear below", "", 1)

			var err error
			prog, err = assemble(source)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should resolve every label", func() {
			Expect(prog.Labels).To(HaveKeyWithValue("limit", asm.Symbol{Address: 0x9000, Section: asm.SECTION_DATA}))
			Expect(prog.Labels).To(HaveKeyWithValue("banner", asm.Symbol{Address: 0x9001, Section: asm.SECTION_DATA}))
			Expect(prog.Labels).To(HaveKeyWithValue("table", asm.Symbol{Address: 0x9005, Section: asm.SECTION_DATA}))
			Expect(prog.Labels).To(HaveKeyWithValue("start", asm.Symbol{Address: 0x5800, Section: asm.SECTION_CODE}))
			Expect(prog.Labels).To(HaveKeyWithValue("loop", asm.Symbol{Address: 0x580a, Section: asm.SECTION_CODE}))
			Expect(prog.Labels).To(HaveKeyWithValue("port", asm.Symbol{Address: 3, Section: asm.SECTION_ABSOLUTE}))
		})

		It("should lay out the object image", func() {
			out, err := prog.Bytes()
			Expect(err).NotTo(HaveOccurred())

			data := []byte{10, 'G', 'o', '!', 0, 1, 2, 3}

			Expect(out).To(HavePrefix(asm.DataMarker))
			Expect(out[len(asm.DataMarker):]).To(HavePrefix(string(data)))

			code := out[len(asm.DataMarker)+len(data):]
			Expect(code).To(HavePrefix(asm.CodeMarker))
			Expect(bytes.Count(out, []byte(asm.CodeMarker))).To(Equal(1))

			code = code[len(asm.CodeMarker):]
			Expect(code[:4]).To(Equal([]byte{0x53, 0x07, 0x02, 0xbc}))
			Expect(code[4:8]).To(Equal([]byte{0x53, 0x01, 0x90, 0x01}))
			Expect(code).To(HaveLen(4 + 4 + 2*9))
		})

		It("should decode back to the source opcodes", func() {
			var names []string
			for item := range prog.CodeItems() {
				word, err := item.Instruction.Encode()
				Expect(err).NotTo(HaveOccurred())
				op, ok := cpu.OpcodeOf(cpu.Decode(word).Code)
				Expect(ok).To(BeTrue())
				names = append(names, op.String())
			}

			Expect(names).To(Equal([]string{
				"movi", "movi", "move", "dec", "cmp",
				"jzro", "push", "in", "out", "inc", "ret",
			}))
		})

		It("should write a listing of every item", func() {
			var buff strings.Builder
			Expect(prog.Listing(&buff)).To(Succeed())

			lines := strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(14))
			Expect(lines[0]).To(HavePrefix("9000  0a"))
			Expect(lines[3]).To(HavePrefix("5800  530702bc  start:"))
		})
	})

	It("should report the first failing line", func() {
		_, err := assemble(".code\nnop\nadd ax, bl\nadd ax, 1\n")
		Expect(err).To(MatchError(cpu.ErrRegisterCode))

		var se asm.ErrSyntax
		Expect(err).To(BeAssignableToTypeOf(se))
		Expect(err.(asm.ErrSyntax).LineNo).To(Equal(3))
	})
})
