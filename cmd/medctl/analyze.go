package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"medication-adherence/internal/domain/adherence"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var nowFlag string
	cmd := &cobra.Command{
		Use:   "analyze FILE.json",
		Short: "Build the 7-day timeline and per-medicine adherence from a logs file",
		Long:  "FILE.json has the /analyze-adherence shape: {\"medicines\": [{\"name\": ...}], \"logs\": [{\"date\", \"medicine\", \"time\", \"status\"}]}.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tzFlag)
			if err != nil {
				return fmt.Errorf("--tz: %w", err)
			}
			now := time.Now().In(loc)
			if nowFlag != "" {
				d, ok := adherence.ParseLogDate(nowFlag, loc)
				if !ok {
					return fmt.Errorf("--now must be YYYY-MM-DD")
				}
				now = d
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runAnalyze(data, now, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference day (YYYY-MM-DD), defaults to today")
	return cmd
}

type analyzeInput struct {
	Medicines []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"medicines"`
	Logs []struct {
		Date     string `json:"date"`
		Medicine string `json:"medicine"`
		Time     string `json:"time"`
		Status   string `json:"status"`
	} `json:"logs"`
}

// runAnalyze no llama a ningún proveedor: el resumen sale del template.
func runAnalyze(data []byte, now time.Time, w io.Writer) error {
	var in analyzeInput
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	meds := make([]adherence.Medicine, 0, len(in.Medicines))
	for _, m := range in.Medicines {
		meds = append(meds, adherence.Medicine{ID: m.ID, Name: m.Name})
	}

	logs := make([]adherence.LogEntry, 0, len(in.Logs))
	for _, l := range in.Logs {
		d, _ := adherence.ParseLogDate(l.Date, now.Location())
		slot, _ := adherence.ParseSlot(l.Time)
		status, _ := adherence.ParseStatus(l.Status)
		logs = append(logs, adherence.LogEntry{
			Date:     d,
			Medicine: l.Medicine,
			Time:     slot,
			Status:   status,
		})
	}

	rep := adherence.Analyze(meds, logs, adherence.LastSevenDays(now), now)
	rep.Summary = adherence.TemplateSummary(rep.Stats)
	return writeIndented(w, rep)
}
