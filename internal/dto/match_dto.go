package dto

import (
	"tutor-match-be/pkg/match"
)

type MatchTutorsRequest struct {
	Skill     string `json:"skill" validate:"required"`
	Day       string `json:"day,omitempty"`
	Time      string `json:"time,omitempty"`
	Mode      string `json:"mode,omitempty"`
	SessionId string `json:"session_id,omitempty"` // when set, results are stored on the session
}

type MatchTutorsResponse struct {
	Matches []match.Candidate `json:"matches"`
}
