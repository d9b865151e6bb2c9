package arith

import "runtime"

// ABI selects the calling convention used to hand the result to printf.
type ABI int

const (
	SysV  ABI = iota // linux, bsd, darwin
	Win64            // windows
)

// HostABI returns the ABI of the machine running the program.
func HostABI() ABI {
	if runtime.GOOS == "windows" {
		return Win64
	}
	return SysV
}

func (e *Emitter) Prologue() {
	e.line(".intel_syntax noprefix")
	if e.ABI == Win64 {
		e.line(".data")
		e.line(`fmt: .asciz "%llu\n"`)
	} else {
		e.line(".section .rodata")
		e.line(`fmt: .string "%lu\n"`)
	}
	e.line(".text")
	e.line(".globl main")
	e.line("main:")
	e.line("  push rbp")
	e.line("  mov rbp, rsp")
}

func (e *Emitter) Epilogue() {
	if e.ABI == Win64 {
		e.line("  mov rdx, rax")
		e.line("  lea rcx, [rip+fmt]")
		e.line("  sub rsp, 32") // shadow space
		e.line("  call printf")
		e.line("  add rsp, 32")
	} else {
		e.line("  mov rsi, rax")
		e.line("  lea rdi, [rip+fmt]")
		e.line("  xor eax, eax")
		e.line("  call printf@PLT")
	}
	e.line("  mov eax, 0")
	e.line("  pop rbp")
	e.line("  ret")
}
