package operation

// NewDefaultRegistry wires the full operation catalog. All handlers are
// registered once at startup; the dispatcher only ever reads the registry.
func NewDefaultRegistry(email *EmailOperations, file *FileOperations, pdf *PDFOperations) *Registry {
	r := NewRegistry()

	r.Register(KeySendEmail, email.SendEmail)
	r.Register(KeyCheckInbox, email.CheckInbox)

	r.Register(KeyExcelToCSV, file.ConvertExcelToCSV)
	r.Register(KeyRenameFiles, file.RenameFiles)
	r.Register(KeyOrganize, file.OrganizeFiles)

	r.Register(KeyMergePDFs, pdf.MergePDFs)
	r.Register(KeyExtractText, pdf.ExtractText)
	r.Register(KeyCreatePDF, pdf.CreatePDF)

	return r
}
