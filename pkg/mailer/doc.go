// Package mailer renders markdown email templates into layout-wrapped
// HTML and delivers them through a provider-neutral Sender. Providers
// live in subpackages (resend).
package mailer
