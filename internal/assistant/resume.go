package assistant

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	maxResumeLength = 20000
	// maxKeywords bounds the keywords extracted from a job posting.
	maxKeywords = 25
)

var stopWords = map[string]struct{}{ //nolint: gochecknoglobals
	"and": {}, "the": {}, "for": {}, "with": {}, "you": {}, "your": {}, "are": {}, "our": {}, "will": {},
	"from": {}, "that": {}, "this": {}, "have": {}, "has": {}, "can": {}, "must": {}, "should": {},
	"able": {}, "who": {}, "all": {}, "any": {}, "not": {}, "but": {}, "into": {}, "per": {}, "they": {},
	"their": {}, "them": {}, "its": {}, "was": {}, "were": {}, "been": {}, "being": {}, "also": {},
	"least": {}, "more": {}, "other": {}, "such": {}, "work": {}, "job": {}, "applicants": {},
	"applicant": {}, "candidate": {}, "candidates": {}, "required": {}, "requirements": {},
	"preferred": {}, "years": {}, "year": {}, "experience": {}, "knowledge": {}, "skills": {}, "good": {},
	"strong": {}, "well": {}, "etc": {}, "including": {}, "position": {}, "hiring": {}, "looking": {},
}

// AnalyzeResume scores resumeText against an active job posting. The score is
// the share of the posting keywords found in the resume. The summary comes
// from the language model when it answers and is generated otherwise.
func (a *Assistant) AnalyzeResume(ctx context.Context,
	p domain.Principal,
	jobID domain.JobID,
	resumeText string) (*domain.ResumeAnalysis, error) {
	if p.Anonymous() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "resumeText is required")
	}
	if utf8.RuneCountInString(resumeText) > maxResumeLength {
		return nil, serrors.With(serrors.ErrBadRequest, "resumeText must be at most %d characters", maxResumeLength)
	}

	job, err := a.jobs.JobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil || !job.Active {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	analysis := MatchKeywords(Keywords(job.Title+"\n"+job.Requirements+"\n"+job.Description), resumeText)
	analysis.JobID = job.ID
	analysis.Summary = fallbackSummary(analysis)

	if a.llm != nil {
		summary, err := a.llm.Complete(ctx, []domain.ChatMessage{
			{Role: domain.ChatRoleSystem, Content: "You review resumes for job applicants. " +
				"Reply with at most three sentences of practical advice."},
			{Role: domain.ChatRoleUser, Content: fmt.Sprintf(
				"Job: %s\nRequirements: %s\nMatched keywords: %s\nMissing keywords: %s\n\nResume:\n%s",
				job.Title, job.Requirements,
				strings.Join(analysis.MatchedKeywords, ", "), strings.Join(analysis.MissingKeywords, ", "),
				resumeText)},
		})
		switch {
		case err != nil:
			logger.Warn(ctx, "resume summary fell back", zap.Error(err))
		case summary != "":
			analysis.Summary = summary
			analysis.AIAssisted = true
		}
	}

	return &analysis, nil
}

// Keywords extracts the distinct significant words of text, most frequent
// first, ties in order of appearance.
func Keywords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range tokenize(text) {
		if _, stop := stopWords[w]; stop || utf8.RuneCountInString(w) < 3 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	return order
}

// MatchKeywords splits keywords into the ones found in text and the rest and
// scores the match from 0 to 100.
func MatchKeywords(keywords []string, text string) domain.ResumeAnalysis {
	words := make(map[string]struct{})
	for _, w := range tokenize(text) {
		words[w] = struct{}{}
	}

	analysis := domain.ResumeAnalysis{MatchedKeywords: []string{}, MissingKeywords: []string{}}
	for _, k := range keywords {
		if _, ok := words[k]; ok {
			analysis.MatchedKeywords = append(analysis.MatchedKeywords, k)
		} else {
			analysis.MissingKeywords = append(analysis.MissingKeywords, k)
		}
	}
	if len(keywords) > 0 {
		analysis.Score = len(analysis.MatchedKeywords) * 100 / len(keywords)
	}

	return analysis
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

func fallbackSummary(a domain.ResumeAnalysis) string {
	total := len(a.MatchedKeywords) + len(a.MissingKeywords)
	if total == 0 {
		return "The job posting does not list specific keywords to compare against."
	}

	summary := fmt.Sprintf("Your resume matches %d of %d keywords of this posting (%d%%).",
		len(a.MatchedKeywords), total, a.Score)
	if len(a.MissingKeywords) > 0 {
		missing := a.MissingKeywords
		if len(missing) > 5 {
			missing = missing[:5]
		}
		summary += " Consider highlighting: " + strings.Join(missing, ", ") + "."
	}

	return summary
}
