// Package domain contains the core marketplace entities shared across the
// application: users, businesses, job postings, services, reviews,
// applications, notifications and verifications. The types are free of
// infrastructure concerns so storage, services and transport can share them.
package domain
