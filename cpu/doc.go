// Package cpu describes the machine model of the Sim6 processor.
//
// The Sim6 has four 16-bit general-purpose registers (ax, bx, cx, dx), each
// addressable as a whole or as its high (ah..dh) and low (al..dl) bytes, and
// four full-width pointer registers (rp, fp, bp, sp). Instructions are packed
// into a 16-bit Regular word, or a 32-bit Long word when they carry a 16-bit
// immediate.
//
// The package provides the register and opcode tables, the Instruction model
// with its bit-exact encoder and decoder, and the per-opcode operand validator.
package cpu
