package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"medication-adherence/internal/domain/schedule"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "normalize FILE.json",
		Short: "Normalize and deduplicate raw medicine candidates",
		Long: "FILE.json may be an array of candidates, {\"medicines\": [...]} or {\"pages\": [[...], ...]}.\n" +
			"Prints the canonical medicine list.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runNormalize(data, verbose, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include per-candidate outcome and defaulted fields")
	return cmd
}

type candidateReport struct {
	Name                string           `json:"name,omitempty"`
	Outcome             schedule.Outcome `json:"outcome"`
	Defaulted           []schedule.Field `json:"defaulted,omitempty"`
	DroppedIntakeLabels []string         `json:"droppedIntakeLabels,omitempty"`
	DroppedCustomTimes  []string         `json:"droppedCustomTimes,omitempty"`
}

type normalizeOutput struct {
	Medicines  []schedule.MedicineRecord `json:"medicines"`
	Candidates []candidateReport         `json:"candidates,omitempty"`
}

func runNormalize(data []byte, verbose bool, w io.Writer) error {
	pages, err := decodeCandidatePages(data)
	if err != nil {
		return err
	}

	svc := schedule.NewService(schedule.ServiceOptions{})
	ext := svc.FromPages(pages)

	out := normalizeOutput{Medicines: ext.Medicines}
	if out.Medicines == nil {
		out.Medicines = []schedule.MedicineRecord{}
	}
	if verbose {
		for _, r := range ext.Results {
			out.Candidates = append(out.Candidates, candidateReport{
				Name:                r.Record.Name,
				Outcome:             r.Outcome,
				Defaulted:           r.Defaulted,
				DroppedIntakeLabels: r.DroppedIntakeLabels,
				DroppedCustomTimes:  r.DroppedCustomTimes,
			})
		}
	}
	return writeIndented(w, out)
}

func decodeCandidatePages(data []byte) ([][]schedule.Candidate, error) {
	var list []map[string]any
	if err := json.Unmarshal(data, &list); err == nil {
		return [][]schedule.Candidate{toCandidates(list)}, nil
	}

	var wrapped struct {
		Medicines []map[string]any   `json:"medicines"`
		Pages     [][]map[string]any `json:"pages"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	pages := make([][]schedule.Candidate, 0, len(wrapped.Pages)+1)
	if len(wrapped.Medicines) > 0 {
		pages = append(pages, toCandidates(wrapped.Medicines))
	}
	for _, p := range wrapped.Pages {
		pages = append(pages, toCandidates(p))
	}
	return pages, nil
}

func toCandidates(in []map[string]any) []schedule.Candidate {
	out := make([]schedule.Candidate, 0, len(in))
	for _, m := range in {
		out = append(out, schedule.Candidate(m))
	}
	return out
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
