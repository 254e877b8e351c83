// Package secmda retrieves SEC EDGAR filings and extracts the Management
// Discussion & Analysis section from their HTML for downstream analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package secmda
