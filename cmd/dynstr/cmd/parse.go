package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "parse int|float <text>...",
		Short:     "Parse integers and decimals",
		ValidArgs: []string{"int", "float"},
		Args:      cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != "int" && kind != "float" {
				return mdwerror.Newf("unknown number kind %q, want int or float", kind).
					WithCode(mdwerror.CodeInvalidInput)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, text := range args[1:] {
				s, err := dynstr.FromString(text)
				if err != nil {
					return a.fail("failed to build value", err)
				}

				var result string
				if kind == "int" {
					var v int64
					v, err = s.ParseInt()
					result = strconv.FormatInt(v, 10)
				} else {
					var v float64
					v, err = s.ParseFloat()
					result = strconv.FormatFloat(v, 'g', -1, 64)
				}
				s.Destroy()

				switch {
				case err == nil:
					fmt.Fprintf(out, "%q\t%s\n", text, result)
				case errors.Is(err, dynstr.ErrNumberOverflow):
					failed++
					fmt.Fprintf(out, "%q\t%s\t(partial %s)\n", text, mdwerror.GetCode(err), result)
				default:
					failed++
					fmt.Fprintf(out, "%q\t%s\n", text, mdwerror.GetCode(err))
				}
			}

			if failed > 0 {
				return mdwerror.Newf("%d of %d inputs failed to parse", failed, len(args)-1).
					WithCode(mdwerror.CodeInvalidNumberFormat)
			}
			return nil
		},
	}
	return cmd
}
