// Package storage rehosts newsletter images into S3-compatible object
// storage. The workspace serves image URLs that expire; copying them to
// a permanent bucket before the email is rendered keeps the images alive
// in recipients' inboxes.
package storage
