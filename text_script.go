// text_script.go - Lua scripts that produce screen text

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const scriptTimeout = 5 * time.Second

// RunTextScript runs a Lua chunk and returns the text it printed. Scripts
// get the base, table, string and math libraries plus:
//
//	print(...)   append the arguments, tab separated, and a newline
//	write(...)   append the arguments with nothing between or after
//	clear()      discard everything written so far
//	screen.cols, screen.rows
func RunTextScript(ctx context.Context, name, source string, cols, rows int) (string, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// The base library can still reach the file system.
	for _, global := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(global, lua.LNil)
	}

	var out strings.Builder
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		writeLuaArgs(L, &out, "\t")
		out.WriteByte('\n')
		return 0
	}))
	L.SetGlobal("write", L.NewFunction(func(L *lua.LState) int {
		writeLuaArgs(L, &out, "")
		return 0
	}))
	L.SetGlobal("clear", L.NewFunction(func(L *lua.LState) int {
		out.Reset()
		return 0
	}))
	screen := L.NewTable()
	screen.RawSetString("cols", lua.LNumber(cols))
	screen.RawSetString("rows", lua.LNumber(rows))
	L.SetGlobal("screen", screen)

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.LoadString(source)
	if err != nil {
		return "", fmt.Errorf("script %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return "", fmt.Errorf("script %s: %w", name, err)
	}
	return out.String(), nil
}

func RunTextScriptFile(ctx context.Context, path string, cols, rows int) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return RunTextScript(ctx, path, string(source), cols, rows)
}

func writeLuaArgs(L *lua.LState, out *strings.Builder, sep string) {
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			out.WriteString(sep)
		}
		out.WriteString(L.ToStringMeta(L.Get(i)).String())
	}
}
