package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const Go = "go"

type Command struct {
	Name string
	Body func()
}

type BuildOptions struct {
	Env    map[string]string
	Stdout io.Writer
	Stderr io.Writer
	// Exit is called with a non-zero code when the build fails; os.Exit by default.
	Exit func(code int)
}

type Build struct {
	env         map[string]string
	stdout      io.Writer
	stderr      io.Writer
	exit        func(code int)
	buildErrors []error

	currentTarget string

	cmds                map[string]func()
	cmdsRegistrationOrd []string
	once                map[string]bool
}

func NewBuild(o BuildOptions) *Build {
	result := &Build{
		env:    nil,
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,

		cmds: make(map[string]func()),
		once: make(map[string]bool),
	}
	if o.Env != nil {
		result.env = make(map[string]string, len(o.Env))
		for k, v := range o.Env {
			result.env[k] = v
		}
	}
	if o.Stdout != nil {
		result.stdout = o.Stdout
	}
	if o.Stderr != nil {
		result.stderr = o.Stderr
	}
	if o.Exit != nil {
		result.exit = o.Exit
	}
	return result
}

func (b *Build) Run(cmd string, args ...string) {
	c := exec.Command(cmd, args...)
	c.Env = os.Environ()
	for k, v := range b.env {
		c.Env = append(c.Env, k+"="+v)
	}
	c.Stdout = b.stdout
	c.Stderr = b.stderr
	c.Stdin = os.Stdin
	b.Info(fmt.Sprintf("%s %s", cmd, strings.Join(args, " ")))
	runErr := c.Run()
	if runErr != nil {
		b.AddError(fmt.Errorf("can't run `%s %s`: %v", cmd, strings.Join(args, " "), runErr))
	}
}

func (b *Build) ForceRun(cmd string, args ...string) {
	b.Run(cmd, args...)
	b.buildErrors = nil
}

func (b *Build) RunCmd(cmd string, args ...string) func() {
	return func() {
		b.Run(cmd, args...)
	}
}

// ShRun runs the command through sh, so wildcards and redirects are expanded.
func (b *Build) ShRun(cmd string, args ...string) {
	fullCmd := []string{cmd}
	fullCmd = append(fullCmd, args...)
	b.Run("sh", "-c", strings.Join(fullCmd, " "))
}

func (b *Build) ForceShRun(cmd string, args ...string) {
	b.ShRun(cmd, args...)
	b.buildErrors = nil
}

// Once runs body only the first time a target with this key asks for it.
func (b *Build) Once(key string, body func()) {
	if b.once[key] {
		return
	}
	b.once[key] = true
	body()
}

func (b *Build) Info(msg string) {
	if b.currentTarget != "" {
		fmt.Fprintf(b.stdout, "[%s] ", b.currentTarget)
	}
	fmt.Fprintln(b.stdout, msg)
}

func (b *Build) AddError(err error) {
	b.buildErrors = append(b.buildErrors, err)
}

func (b *Build) Errors() []error {
	return b.buildErrors
}

func (b *Build) Cmd(subCommand string, body func()) {
	_, ok := b.cmds[subCommand]
	if ok {
		b.AddError(fmt.Errorf("can't register command `%v`. Already has command with such name", subCommand))
		return
	}
	if body == nil {
		b.AddError(fmt.Errorf("can't register command `%v`. Command body can't be nil", subCommand))
		return
	}
	b.cmds[subCommand] = body
	b.cmdsRegistrationOrd = append(b.cmdsRegistrationOrd, subCommand)
}

func (b *Build) Register(commands []Command) {
	for _, cmd := range commands {
		b.Cmd(cmd.Name, cmd.Body)
	}
}

// Build runs the requested targets in order, or every registered target
// when args is empty.
func (b *Build) Build(args []string) {
	if len(b.buildErrors) > 0 {
		b.printAllErrorsAndExit()
		return
	}

	if len(args) == 0 {
		args = b.cmdsRegistrationOrd
	}
	if len(args) == 0 {
		return
	}

	if args[0] == "-h" {
		b.printAvailableTargets()
		return
	}

	for _, cmd := range args {
		if _, ok := b.cmds[cmd]; !ok {
			b.printAvailableTargets()
			fmt.Fprintf(b.stdout, "can't find such command as: `%v`\n", cmd)
			fmt.Fprintln(b.stdout, "can't execute build")
			b.exit(1)
			return
		}
	}
	for _, cmd := range args {
		b.currentTarget = cmd
		b.cmds[cmd]()
		if len(b.buildErrors) > 0 {
			b.printAllErrorsAndExit()
			return
		}
	}
	b.currentTarget = ""
}

func (b *Build) BuildFromOsArgs() {
	b.Build(os.Args[1:])
}

func (b *Build) printAvailableTargets() {
	fmt.Fprintf(b.stdout, "available targets:\n")
	for _, cmd := range b.cmdsRegistrationOrd {
		fmt.Fprintf(b.stdout, "\t%+v\n", cmd)
	}
}

func (b *Build) printAllErrorsAndExit() {
	for _, err := range b.buildErrors {
		fmt.Fprintf(b.stdout, "%v\n", err)
	}
	fmt.Fprintln(b.stdout, "can't execute build")
	b.exit(1)
}
