package ai

var CandidateText = candidateText
