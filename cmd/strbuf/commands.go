package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/strbuf"
	"github.com/dshills/strbuf/utf8x"
)

var rootCmd = &cobra.Command{
	Use:           "strbuf",
	Short:         "Inspect and transform byte strings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// input joins the arguments, or reads stdin when there are none.
func input(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	return io.ReadAll(os.Stdin)
}

var escapeCmd = &cobra.Command{
	Use:   "escape [text]",
	Short: "Rewrite input with C-style backslash escapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := input(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		b := strbuf.NewFrom(0, in)
		defer b.Free()
		b.Escape()
		fmt.Println(b.String())
		return nil
	},
}

var unescapeCmd = &cobra.Command{
	Use:   "unescape [text]",
	Short: "Decode C-style backslash escapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := input(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		b := strbuf.NewFrom(0, in)
		defer b.Free()
		b.Unescape()
		os.Stdout.Write(b.Bytes())
		fmt.Println()
		return nil
	},
}

var runesCmd = &cobra.Command{
	Use:   "runes [text]",
	Short: "List code points with their UTF-8 sequence lengths",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := input(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		for i := 0; i < len(in); {
			c, n := utf8x.Decode(in[i:])
			if n == 0 {
				fmt.Printf("0x%02X\tinvalid byte\n", in[i])
				i++
				continue
			}
			fmt.Printf("U+%04X\t%d byte(s)\t%s\n", c, n, string(c))
			i += n
		}
		return nil
	},
}

var packWidth int

var packCmd = &cobra.Command{
	Use:   "pack <value>...",
	Short: "Pack decimal integers as big-endian bytes, hex encoded",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := strbuf.Empty()
		defer b.Free()
		p := strbuf.NewPacker(&b)
		for _, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", arg, err)
			}
			switch packWidth {
			case 1:
				p.Int8(int8(v))
			case 2:
				p.Int16(int16(v))
			case 4:
				p.Int32(int32(v))
			case 8:
				p.Int64(v)
			default:
				return fmt.Errorf("invalid width %d: must be 1, 2, 4, or 8", packWidth)
			}
		}
		fmt.Printf("%x\n", b.Bytes())
		return nil
	},
}

func init() {
	packCmd.Flags().IntVarP(&packWidth, "width", "w", 4, "value width in bytes (1, 2, 4, or 8)")
	rootCmd.AddCommand(escapeCmd, unescapeCmd, runesCmd, packCmd)
}
