// Package scoring implements the job-readiness score formulas. All functions
// are pure and perform no I/O.
package scoring

import "strings"

// Weights applied to the raw and derived scores when blending the composite
// readiness score.
const (
	skillWeight     = 0.5
	resumeWeight    = 0.3
	interviewWeight = 0.2
)

// Interview derives the interview score as the truncated mean of the skill
// and resume scores.
func Interview(skill, resume int) int {
	return (skill + resume) / 2
}

// Readiness blends the raw scores and the derived interview score into the
// composite readiness score. The result is truncated toward zero, not
// rounded; the interview input must itself already be truncated.
func Readiness(skill, resume, interview int) int {
	return int(skillWeight*float64(skill) + resumeWeight*float64(resume) + interviewWeight*float64(interview))
}

// Compute returns the interview and readiness scores for the given raw
// inputs. Inputs are expected to lie in [0,100] but are not clamped.
func Compute(skill, resume int) (interview, readiness int) {
	interview = Interview(skill, resume)
	readiness = Readiness(skill, resume, interview)
	return interview, readiness
}

// CountKeywords returns how many entries of keywords occur in text as a
// substring. Text is expected to be lower-cased already; keywords are
// lower-cased before matching. Empty keywords never match.
func CountKeywords(text string, keywords []string) int {
	matches := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			matches++
		}
	}
	return matches
}

// ResumeScore maps a keyword match count to a resume score, capped at 100.
func ResumeScore(matches, multiplier int) int {
	score := matches * multiplier
	if score > 100 {
		return 100
	}
	return score
}
