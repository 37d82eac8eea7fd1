package metrics

import (
	"fmt"
	"sort"
	"strings"

	"lexema.com/postag/utils"
)

// Report summarizes how predicted tag sequences compare against a reference.
type Report struct {
	Total int
	Wrong int

	// Confusions[ref][pred] counts how often the reference tag ref was
	// predicted as pred.
	Confusions map[string]map[string]int
}

func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Total-r.Wrong) / float64(r.Total) * 100
}

// Evaluate scores predicted tag lines against reference tag lines. Both are
// compared case-insensitively; line or token count mismatches are data
// errors since the files are positionally aligned.
func Evaluate(reference [][]string, predicted [][]string) (Report, error) {
	report := Report{Confusions: make(map[string]map[string]int)}

	if len(reference) != len(predicted) {
		return report, fmt.Errorf(
			"reference has %d lines, predictions have %d",
			len(reference), len(predicted),
		)
	}

	store := utils.GlobalStringStore()
	for i := range reference {
		refs, preds := reference[i], predicted[i]
		if len(refs) != len(preds) {
			return report, fmt.Errorf(
				"line %d: reference has %d tags, predictions have %d",
				i, len(refs), len(preds),
			)
		}
		for j := range refs {
			ref := store.Intern(refs[j])
			pred := store.Intern(preds[j])
			report.Total++
			if ref == pred {
				continue
			}
			report.Wrong++
			row, ok := report.Confusions[ref]
			if !ok {
				row = make(map[string]int)
				report.Confusions[ref] = row
			}
			row[pred]++
		}
	}
	return report, nil
}

const separator = "____________________________________________________________________________________"

// Render formats the report as a human-readable block, confusion rows sorted
// by reference tag.
func (r Report) Render() string {
	var sb strings.Builder
	sb.WriteString(separator + "\n\n")
	sb.WriteString(fmt.Sprintf("Total wrong:             %d\n", r.Wrong))
	sb.WriteString(fmt.Sprintf("Out of:                  %d\n", r.Total))
	sb.WriteString(fmt.Sprintf("Percentage accuracy:     %f\n", r.Accuracy()))
	sb.WriteString("\nIncorrectly identified:\n\n")

	refs := make([]string, 0, len(r.Confusions))
	for ref := range r.Confusions {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	for _, ref := range refs {
		row := r.Confusions[ref]
		preds := make([]string, 0, len(row))
		for pred := range row {
			preds = append(preds, pred)
		}
		sort.Strings(preds)

		sb.WriteString(fmt.Sprintf("%-7s predicted as  ", strings.ToUpper(ref)))
		for _, pred := range preds {
			sb.WriteString(fmt.Sprintf("%-8s", fmt.Sprintf("%s:%d", strings.ToUpper(pred), row[pred])))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + separator + "\n")
	return sb.String()
}
