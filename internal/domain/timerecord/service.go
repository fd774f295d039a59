package timerecord

import "context"

type TimeRecordService interface {
	// Upload ingests a batch of clock-system rows. Rows already stored
	// for the same clock numbers inside the batch's date range are
	// replaced, so re-uploading a corrected file is safe.
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)

	ListRecords(ctx context.Context, from, to string) ([]TimeRecordResponse, error)
	ListEmployeeRecords(ctx context.Context, clockNumber, from, to string) ([]TimeRecordResponse, error)
}
