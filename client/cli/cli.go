// Package cli is the interactive shell. It keeps a working path and
// drives every command through an ApiClient against a running server.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sdcoffey/atlas/client/apiclient"
	"github.com/sdcoffey/atlas/listing"
	"github.com/sdcoffey/atlas/tree"
)

type Command interface {
	Execute(*Shell) (string, error)
}

type Shell struct {
	client apiclient.ApiClient
	wd     []string
}

func NewShell(client apiclient.ApiClient) *Shell {
	return &Shell{client: client}
}

func Run(client apiclient.ApiClient, in io.Reader, out io.Writer) error {
	shell := NewShell(client)

	fmt.Fprint(out, ">>> ")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if cmd, err := parseCommand(scanner.Text()); err != nil {
			fmt.Fprintln(out, err.Error())
		} else if resp, err := cmd.Execute(shell); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			fmt.Fprintln(out, "error: "+err.Error())
		} else if resp != "" {
			fmt.Fprintln(out, resp)
		}
		fmt.Fprint(out, ">>> ")
	}

	return scanner.Err()
}

func parseCommand(command string) (Command, error) {
	components := strings.Fields(strings.TrimSpace(command))
	if len(components) == 0 {
		return noop{}, nil
	}

	function, args := strings.ToLower(components[0]), components[1:]
	switch function {
	case "ls":
		opts, path, err := parseListArgs(args)
		if err != nil {
			return nil, err
		}
		return ls{opts, path}, nil
	case "cd":
		if len(args) < 1 {
			return nil, errors.New("Not enough arguments in call to cd")
		}
		return cd{args[0]}, nil
	case "pwd":
		return pwd{}, nil
	case "stat":
		if len(args) < 1 {
			return nil, errors.New("Not enough arguments in call to stat")
		}
		return stat{args[0]}, nil
	case "exit", "quit":
		return exit{}, nil
	default:
		return nil, fmt.Errorf("Unrecognized command: %s", function)
	}
}

func parseListArgs(args []string) (opts listing.Options, path string, err error) {
	for _, arg := range args {
		switch {
		case arg == "-A":
			opts.ShowHidden = true
		case arg == "-l":
			opts.Detailed = true
		case arg == "-r":
			opts.Reverse = true
		case arg == "-t":
			opts.SortByTime = true
		case arg == "-H":
			opts.HumanReadable = true
		case strings.HasPrefix(arg, "--filter="):
			opts.FilterBy = strings.TrimPrefix(arg, "--filter=")
		case strings.HasPrefix(arg, "-"):
			err = fmt.Errorf("Unrecognized option: %s", arg)
			return
		default:
			path = arg
		}
	}

	return
}

type noop struct{}

func (cmd noop) Execute(shell *Shell) (string, error) {
	return "", nil
}

type exit struct{}

func (cmd exit) Execute(shell *Shell) (string, error) {
	return "", io.EOF
}

type ls struct {
	opts listing.Options
	path string
}

func (cmd ls) Execute(shell *Shell) (string, error) {
	infos, err := shell.client.Ls(shell.pathTo(cmd.path), cmd.opts)
	if err != nil {
		return "", err
	}

	entries := make([]listing.Entry, len(infos))
	for idx, info := range infos {
		entries[idx] = entryFromInfo(info)
	}

	return listing.Render(entries, cmd.opts), nil
}

type cd struct {
	dirname string
}

func (cmd cd) Execute(shell *Shell) (string, error) {
	switch cmd.dirname {
	case "/":
		shell.wd = nil
		return "", nil
	case "..":
		if len(shell.wd) > 0 {
			shell.wd = shell.wd[:len(shell.wd)-1]
		}
		return "", nil
	}

	target := shell.pathTo(cmd.dirname)
	if info, err := shell.client.Stat(target); err != nil {
		return "", err
	} else if !info.Dir {
		return "", fmt.Errorf("%s not a directory", cmd.dirname)
	}

	shell.wd = append(shell.wd, strings.Split(cmd.dirname, "/")...)
	return "", nil
}

type pwd struct{}

func (cmd pwd) Execute(shell *Shell) (string, error) {
	return "/" + strings.Join(shell.wd, "/"), nil
}

type stat struct {
	name string
}

func (cmd stat) Execute(shell *Shell) (string, error) {
	info, err := shell.client.Stat(shell.pathTo(cmd.name))
	if err != nil {
		return "", err
	}

	line := listing.DetailLine(entryFromInfo(info), info.Name, false)
	if info.Type != "" {
		line += " (" + info.Type + ")"
	}

	return line, nil
}

func (shell *Shell) pathTo(name string) string {
	segments := shell.wd
	if name != "" {
		segments = append(append([]string{}, shell.wd...), strings.Split(name, "/")...)
	}

	return strings.Join(segments, "/")
}

func entryFromInfo(info tree.NodeInfo) listing.Entry {
	return listing.Entry{
		Name:        info.Name,
		Permissions: info.Permissions,
		Size:        info.Size,
		MTime:       info.MTime,
		Dir:         info.Dir,
	}
}
