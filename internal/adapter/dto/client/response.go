package client

// ListClientsResponse is a paginated list of client records
type ListClientsResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}

// RowError describes a CSV row that could not be imported
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport summarizes the outcome of a CSV bulk import
type ImportReport struct {
	TotalRows  int        `json:"total_rows"`
	Imported   int        `json:"imported"`
	Duplicates int        `json:"duplicates"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors,omitempty"`
	ArchiveKey string     `json:"archive_key,omitempty"`
}

// ProcessReport summarizes a batch categorization run
type ProcessReport struct {
	Requested int      `json:"requested"`
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}
