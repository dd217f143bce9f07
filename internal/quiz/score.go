package quiz

import (
	"fmt"
	"math"
)

// Score counts correct answers. Unanswered questions count as wrong.
func Score(questions []Question, answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			score++
		}
	}
	return score
}

// Percentage converts a score over total to a round-half-up percent.
// A zero total yields 0.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Accuracy is the lifetime percent of correct answers over all questions
// attempted, assuming NumQuestions per quiz. Zero quizzes yields 0.
func Accuracy(totalCorrect, totalQuizzes int) int {
	if totalQuizzes == 0 {
		return 0
	}
	return int(math.Round(float64(totalCorrect) / float64(totalQuizzes*NumQuestions) * 100))
}

// Feedback is the post-quiz verdict shown with the score.
type Feedback struct {
	Message    string
	Suggestion string
	Tone       Tone
}

// Tone classifies feedback for presentation.
type Tone int

const (
	ToneOutstanding Tone = iota
	ToneGood
	ToneAverage
	ToneNeedsWork
)

// FeedbackFor maps a quiz percentage to a verdict. Bands are inclusive at
// the lower bound: 80, 60 and 40.
func FeedbackFor(percentage int, subject, level string) Feedback {
	switch {
	case percentage >= 80:
		return Feedback{
			Message:    "Outstanding work! You have a strong grasp of this topic.",
			Suggestion: fmt.Sprintf("Try a harder level than %s to keep growing.", level),
			Tone:       ToneOutstanding,
		}
	case percentage >= 60:
		return Feedback{
			Message:    "Good job! You're on the right track.",
			Suggestion: fmt.Sprintf("Review the questions you missed in %s and try again.", subject),
			Tone:       ToneGood,
		}
	case percentage >= 40:
		return Feedback{
			Message:    "Not bad, but there's room to improve.",
			Suggestion: fmt.Sprintf("Ask the tutor to explain the %s basics before the next attempt.", subject),
			Tone:       ToneAverage,
		}
	default:
		return Feedback{
			Message:    "This topic needs more practice.",
			Suggestion: fmt.Sprintf("Work through %s step by step with the tutor at the %s level.", subject, level),
			Tone:       ToneNeedsWork,
		}
	}
}

// Motivation maps lifetime accuracy to an encouraging line for the stats
// view. Same bands as FeedbackFor.
func Motivation(accuracy int) string {
	switch {
	case accuracy >= 80:
		return "You're on fire! Keep up the amazing work."
	case accuracy >= 60:
		return "Great progress! You're getting stronger every quiz."
	case accuracy >= 40:
		return "Keep practicing, you're improving steadily."
	default:
		return "Every expert was once a beginner. Keep going!"
	}
}
