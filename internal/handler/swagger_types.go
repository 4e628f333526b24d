package handler

// Swagger type definitions for API documentation.

// --- Request Types ---

// ChatRequest represents the chat request body.
type ChatRequest struct {
	Question string `json:"question" binding:"required" example:"What is the notice period for termination?"`
	Context  string `json:"context" binding:"required" example:"Full extracted document text..."`
	UserRole string `json:"user_role" example:"plaintiff"`
}

// --- Response Types ---

// KeyTerm is a defined term extracted from the document.
type KeyTerm struct {
	Term       string `json:"term" example:"Force Majeure"`
	Definition string `json:"definition" example:"An unforeseeable event preventing a party from fulfilling the contract."`
}

// KeyDetails summarizes the document's identifying facts.
type KeyDetails struct {
	ConfidenceScore string    `json:"confidence_score" example:"95%"`
	DocumentType    string    `json:"document_type" example:"Lease Agreement"`
	PartiesInvolved []string  `json:"parties_involved"`
	EffectivePeriod string    `json:"effective_period" example:"January 1, 2024 to December 31, 2024"`
	ClausesInvolved []string  `json:"clauses_involved"`
	KeyTerms        []KeyTerm `json:"key_terms"`
}

// ClauseAnalysis explains one clause with a supporting citation.
type ClauseAnalysis struct {
	Clause   string `json:"clause" example:"Clause 5: Confidentiality"`
	Meaning  string `json:"meaning"`
	Citation string `json:"citation"`
}

// Analysis is the role-tailored interpretation of the document.
type Analysis struct {
	Summary         string           `json:"summary"`
	ClausesAnalysis []ClauseAnalysis `json:"clauses_analysis"`
	References      []string         `json:"references"`
}

// InsightDocument is the full structured analysis result. The live response
// is model-produced; this type documents the schema the prompt requests.
type InsightDocument struct {
	ScrapedText         string     `json:"scraped_text"`
	KeyDetails          KeyDetails `json:"key_details"`
	Analysis            Analysis   `json:"analysis"`
	ActionableChecklist []string   `json:"actionable_checklist"`
}
