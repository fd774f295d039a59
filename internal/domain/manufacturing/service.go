package manufacturing

import "context"

type MOService interface {
	CreateMO(ctx context.Context, req CreateMORequest) (MOResponse, error)
	GetMO(ctx context.Context, id string) (MOResponse, error)
	ListMOs(ctx context.Context, filter MOFilter) ([]MOResponse, int64, error)

	// Calendar returns every order scheduled inside [from, to], both
	// dates in YYYY-MM-DD form.
	Calendar(ctx context.Context, from, to string) ([]MOResponse, error)

	// ScheduleMO places the order on (or takes it off) the production
	// calendar.
	ScheduleMO(ctx context.Context, req ScheduleMORequest) (MOResponse, error)

	StartMO(ctx context.Context, id string) (MOResponse, error)
	CompleteMO(ctx context.Context, id string) (MOResponse, error)
	CancelMO(ctx context.Context, id string) (MOResponse, error)
}
