// Package drive implements a document loader for a Google Drive folder.
//
// The loader authenticates with a service account credentials file and
// reads one configured folder. Google Docs are exported to plain text;
// PDFs are listed but skipped for text extraction. Every loaded document
// is tagged source "gdrive_document" and feeds the personal knowledge
// domain.
//
// Share the folder with the service account's email address, otherwise
// the query returns nothing.
package drive
