package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/ZanzyTHEbar/hongyeon/internal/security"
	"github.com/ZanzyTHEbar/hongyeon/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// personFlags binds the flags describing one person
type personFlags struct {
	suffix string
	name   string
	year   int
	month  int
	day    int
	hour   int
	minute int
	noTime bool
}

func (p *personFlags) register(fs *pflag.FlagSet, label string) {
	fs.StringVar(&p.name, "name-"+p.suffix, "", "Display name of "+label)
	fs.IntVar(&p.year, "year-"+p.suffix, 0, "Birth year of "+label+" (required)")
	fs.IntVar(&p.month, "month-"+p.suffix, 0, "Birth month of "+label)
	fs.IntVar(&p.day, "day-"+p.suffix, 0, "Birth day of "+label)
	fs.IntVar(&p.hour, "hour-"+p.suffix, saju.DefaultHour, "Birth hour of "+label+" (1-23, 0 means noon)")
	fs.IntVar(&p.minute, "minute-"+p.suffix, saju.DefaultMinute, "Birth minute of "+label+" (0-59)")
	fs.BoolVar(&p.noTime, "no-time-"+p.suffix, false, "Birth time of "+label+" is unknown")
}

// input converts the flags, treating unset ones as absent
func (p *personFlags) input(fs *pflag.FlagSet) types.PersonInput {
	opt := func(flag string, v int) types.LenientInt {
		if !fs.Changed(flag + "-" + p.suffix) {
			return types.LenientInt{}
		}
		return types.Int(v)
	}

	return types.PersonInput{
		Name:   security.SanitizeName(p.name),
		Year:   opt("year", p.year),
		Month:  opt("month", p.month),
		Day:    opt("day", p.day),
		Hour:   opt("hour", p.hour),
		Minute: opt("minute", p.minute),
		NoTime: p.noTime,
	}
}

func scoreCmd() *cobra.Command {
	a := &personFlags{suffix: "a"}
	b := &personFlags{suffix: "b"}
	var format string

	c := &cobra.Command{
		Use:   "score",
		Short: "Score the compatibility of two people",
		Example: "  hongyeon score --year-a 1990 --hour-a 8 --minute-a 30 --year-b 2000 --no-time-b\n" +
			"  hongyeon score --year-a 1974 --year-b 1966 --format yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := types.ScoreRequest{
				PersonA: a.input(cmd.Flags()),
				PersonB: b.input(cmd.Flags()),
			}

			resp, err := score(req)
			if err != nil {
				return err
			}
			return printScore(cmd.OutOrStdout(), resp, format)
		},
	}

	a.register(c.Flags(), "person A")
	b.register(c.Flags(), "person B")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml|msgpack")

	return c
}

func score(req types.ScoreRequest) (types.ScoreResponse, error) {
	if missing := req.MissingYears(); len(missing) > 0 {
		return types.ScoreResponse{}, errors.NewMissingYearError(missing...)
	}

	result, err := saju.Score(req.PersonA.Birth(), req.PersonB.Birth())
	if err != nil {
		return types.ScoreResponse{}, err
	}
	return types.NewScoreResponse(req, result), nil
}

func printScore(w io.Writer, resp types.ScoreResponse, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	case "msgpack":
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(resp)
	case "pretty", "":
		return printPretty(w, resp)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml|msgpack)", format)
	}
}

func printPretty(w io.Writer, resp types.ScoreResponse) error {
	var sb strings.Builder

	if len(resp.Names) == 2 {
		fmt.Fprintf(&sb, "%s & %s\n", displayName(resp.Names[0], "A"), displayName(resp.Names[1], "B"))
	}
	fmt.Fprintf(&sb, "궁합 점수: %d점\n", resp.Score)
	fmt.Fprintf(&sb, "%s\n\n", resp.Message)

	writeReading(&sb, "A", resp.Breakdown.PersonA)
	writeReading(&sb, "B", resp.Breakdown.PersonB)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeReading(sb *strings.Builder, label string, r saju.Reading) {
	elements := make([]string, len(r.Elements))
	for i, e := range r.Elements {
		elements[i] = string(e)
	}

	fmt.Fprintf(sb, "%s: %d년 %s%s", label, r.Year, r.Stem, r.Branch)
	if r.HourBranch != nil {
		fmt.Fprintf(sb, " %s시", r.HourBranch)
	}
	fmt.Fprintf(sb, " [%s]\n", strings.Join(elements, " "))
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
