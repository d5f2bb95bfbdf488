package decode

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1tel/pkg/cmd/cmdutil"
	"github.com/mpapenbr/f1tel/pkg/config"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/projection"
)

const (
	formatHex = "hex"
	formatBin = "bin"
)

func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "decodes datagrams from a file and prints them as JSON",
		Long: `Decodes datagrams from a file and prints them as JSON.

With --format hex each non-empty line holds one datagram as hex digits
(whitespace is ignored). With --format bin the whole file is one datagram.
Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.SetupLogger(); err != nil {
				return err
			}
			in, closeFn, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer closeFn()
			return decode(in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&config.Decode.Format,
		"format",
		"f",
		formatHex,
		"input format (hex, bin)")
	cmd.Flags().StringVarP(&config.Decode.Path,
		"path",
		"p",
		"",
		"jsonpath applied to each packet, e.g. $.header['packet-id']")
	cmd.Flags().BoolVar(&config.Decode.Pretty,
		"pretty",
		false,
		"indent the output")
	cmdutil.AddLogFlags(cmd)
	return cmd
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func decode(in io.Reader, out io.Writer) error {
	datagrams, err := readDatagrams(in, config.Decode.Format)
	if err != nil {
		return err
	}
	indent := 0
	if config.Decode.Pretty {
		indent = 2
	}
	for i, b := range datagrams {
		p, err := packet.DecodeDatagram(b)
		if err != nil {
			return fmt.Errorf("datagram %d: %w", i+1, err)
		}
		if err := write(out, p.Fields(), indent); err != nil {
			return err
		}
	}
	return nil
}

func write(out io.Writer, fields map[string]any, indent int) error {
	if config.Decode.Path == "" {
		_, err := fmt.Fprintln(out, projection.JSON(fields, indent))
		return err
	}
	res, err := projection.Select(fields, config.Decode.Path)
	if err != nil {
		return err
	}
	for _, v := range res {
		var line string
		if m, ok := v.(map[string]any); ok {
			line = projection.JSON(m, indent)
		} else {
			line = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func readDatagrams(in io.Reader, format string) ([][]byte, error) {
	switch format {
	case formatBin:
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return [][]byte{b}, nil
	case formatHex:
		ret := [][]byte{}
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			s := strings.Join(strings.Fields(scanner.Text()), "")
			if s == "" {
				continue
			}
			b, err := hex.DecodeString(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ret = append(ret, b)
		}
		return ret, scanner.Err()
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
