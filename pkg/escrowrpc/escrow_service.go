package escrowrpc

import (
	"context"

	"google.golang.org/grpc"
)

const EscrowServiceName = "timelock.v1.EscrowService"

const (
	EscrowService_Deposit_FullMethodName                    = "/timelock.v1.EscrowService/Deposit"
	EscrowService_Withdraw_FullMethodName                   = "/timelock.v1.EscrowService/Withdraw"
	EscrowService_WithdrawAllPossible_FullMethodName        = "/timelock.v1.EscrowService/WithdrawAllPossible"
	EscrowService_IsWithdrawable_FullMethodName             = "/timelock.v1.EscrowService/IsWithdrawable"
	EscrowService_GetTotalWithdrawableAmount_FullMethodName = "/timelock.v1.EscrowService/GetTotalWithdrawableAmount"
	EscrowService_GetWithdrawableList_FullMethodName        = "/timelock.v1.EscrowService/GetWithdrawableList"
	EscrowService_GetTotalNumDeposits_FullMethodName        = "/timelock.v1.EscrowService/GetTotalNumDeposits"
	EscrowService_GetDeposit_FullMethodName                 = "/timelock.v1.EscrowService/GetDeposit"
	EscrowService_ListDeposits_FullMethodName               = "/timelock.v1.EscrowService/ListDeposits"
	EscrowService_GetEscrowBalance_FullMethodName           = "/timelock.v1.EscrowService/GetEscrowBalance"
)

// EscrowServiceServer is the public surface of the escrow ledger.
type EscrowServiceServer interface {
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	WithdrawAllPossible(context.Context, *WithdrawAllPossibleRequest) (*WithdrawAllPossibleResponse, error)
	IsWithdrawable(context.Context, *IsWithdrawableRequest) (*IsWithdrawableResponse, error)
	GetTotalWithdrawableAmount(context.Context, *GetTotalWithdrawableAmountRequest) (*GetTotalWithdrawableAmountResponse, error)
	GetWithdrawableList(context.Context, *GetWithdrawableListRequest) (*GetWithdrawableListResponse, error)
	GetTotalNumDeposits(context.Context, *GetTotalNumDepositsRequest) (*GetTotalNumDepositsResponse, error)
	GetDeposit(context.Context, *GetDepositRequest) (*GetDepositResponse, error)
	ListDeposits(context.Context, *ListDepositsRequest) (*ListDepositsResponse, error)
	GetEscrowBalance(context.Context, *GetEscrowBalanceRequest) (*GetEscrowBalanceResponse, error)
}

func RegisterEscrowServiceServer(s grpc.ServiceRegistrar, srv EscrowServiceServer) {
	s.RegisterService(&EscrowService_ServiceDesc, srv)
}

var EscrowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EscrowServiceName,
	HandlerType: (*EscrowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deposit",
			Handler:    _EscrowService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _EscrowService_Withdraw_Handler,
		},
		{
			MethodName: "WithdrawAllPossible",
			Handler:    _EscrowService_WithdrawAllPossible_Handler,
		},
		{
			MethodName: "IsWithdrawable",
			Handler:    _EscrowService_IsWithdrawable_Handler,
		},
		{
			MethodName: "GetTotalWithdrawableAmount",
			Handler:    _EscrowService_GetTotalWithdrawableAmount_Handler,
		},
		{
			MethodName: "GetWithdrawableList",
			Handler:    _EscrowService_GetWithdrawableList_Handler,
		},
		{
			MethodName: "GetTotalNumDeposits",
			Handler:    _EscrowService_GetTotalNumDeposits_Handler,
		},
		{
			MethodName: "GetDeposit",
			Handler:    _EscrowService_GetDeposit_Handler,
		},
		{
			MethodName: "ListDeposits",
			Handler:    _EscrowService_ListDeposits_Handler,
		},
		{
			MethodName: "GetEscrowBalance",
			Handler:    _EscrowService_GetEscrowBalance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pkg/escrowrpc/escrow_service.go",
}

var _EscrowService_Deposit_Handler = unaryHandler(
	EscrowService_Deposit_FullMethodName,
	func() interface{} { return new(DepositRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Deposit(ctx, req.(*DepositRequest))
	},
)

var _EscrowService_Withdraw_Handler = unaryHandler(
	EscrowService_Withdraw_FullMethodName,
	func() interface{} { return new(WithdrawRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	},
)

var _EscrowService_WithdrawAllPossible_Handler = unaryHandler(
	EscrowService_WithdrawAllPossible_FullMethodName,
	func() interface{} { return new(WithdrawAllPossibleRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).WithdrawAllPossible(ctx, req.(*WithdrawAllPossibleRequest))
	},
)

var _EscrowService_IsWithdrawable_Handler = unaryHandler(
	EscrowService_IsWithdrawable_FullMethodName,
	func() interface{} { return new(IsWithdrawableRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).IsWithdrawable(ctx, req.(*IsWithdrawableRequest))
	},
)

var _EscrowService_GetTotalWithdrawableAmount_Handler = unaryHandler(
	EscrowService_GetTotalWithdrawableAmount_FullMethodName,
	func() interface{} { return new(GetTotalWithdrawableAmountRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetTotalWithdrawableAmount(ctx, req.(*GetTotalWithdrawableAmountRequest))
	},
)

var _EscrowService_GetWithdrawableList_Handler = unaryHandler(
	EscrowService_GetWithdrawableList_FullMethodName,
	func() interface{} { return new(GetWithdrawableListRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetWithdrawableList(ctx, req.(*GetWithdrawableListRequest))
	},
)

var _EscrowService_GetTotalNumDeposits_Handler = unaryHandler(
	EscrowService_GetTotalNumDeposits_FullMethodName,
	func() interface{} { return new(GetTotalNumDepositsRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetTotalNumDeposits(ctx, req.(*GetTotalNumDepositsRequest))
	},
)

var _EscrowService_GetDeposit_Handler = unaryHandler(
	EscrowService_GetDeposit_FullMethodName,
	func() interface{} { return new(GetDepositRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetDeposit(ctx, req.(*GetDepositRequest))
	},
)

var _EscrowService_ListDeposits_Handler = unaryHandler(
	EscrowService_ListDeposits_FullMethodName,
	func() interface{} { return new(ListDepositsRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).ListDeposits(ctx, req.(*ListDepositsRequest))
	},
)

var _EscrowService_GetEscrowBalance_Handler = unaryHandler(
	EscrowService_GetEscrowBalance_FullMethodName,
	func() interface{} { return new(GetEscrowBalanceRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetEscrowBalance(ctx, req.(*GetEscrowBalanceRequest))
	},
)

type EscrowServiceClient interface {
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	WithdrawAllPossible(ctx context.Context, in *WithdrawAllPossibleRequest, opts ...grpc.CallOption) (*WithdrawAllPossibleResponse, error)
	IsWithdrawable(ctx context.Context, in *IsWithdrawableRequest, opts ...grpc.CallOption) (*IsWithdrawableResponse, error)
	GetTotalWithdrawableAmount(ctx context.Context, in *GetTotalWithdrawableAmountRequest, opts ...grpc.CallOption) (*GetTotalWithdrawableAmountResponse, error)
	GetWithdrawableList(ctx context.Context, in *GetWithdrawableListRequest, opts ...grpc.CallOption) (*GetWithdrawableListResponse, error)
	GetTotalNumDeposits(ctx context.Context, in *GetTotalNumDepositsRequest, opts ...grpc.CallOption) (*GetTotalNumDepositsResponse, error)
	GetDeposit(ctx context.Context, in *GetDepositRequest, opts ...grpc.CallOption) (*GetDepositResponse, error)
	ListDeposits(ctx context.Context, in *ListDepositsRequest, opts ...grpc.CallOption) (*ListDepositsResponse, error)
	GetEscrowBalance(ctx context.Context, in *GetEscrowBalanceRequest, opts ...grpc.CallOption) (*GetEscrowBalanceResponse, error)
}

type escrowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEscrowServiceClient(cc grpc.ClientConnInterface) EscrowServiceClient {
	return &escrowServiceClient{cc}
}

func (c *escrowServiceClient) Deposit(
	ctx context.Context, in *DepositRequest, opts ...grpc.CallOption,
) (*DepositResponse, error) {
	out := new(DepositResponse)
	if err := c.cc.Invoke(ctx, EscrowService_Deposit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) Withdraw(
	ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption,
) (*WithdrawResponse, error) {
	out := new(WithdrawResponse)
	if err := c.cc.Invoke(ctx, EscrowService_Withdraw_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) WithdrawAllPossible(
	ctx context.Context, in *WithdrawAllPossibleRequest, opts ...grpc.CallOption,
) (*WithdrawAllPossibleResponse, error) {
	out := new(WithdrawAllPossibleResponse)
	if err := c.cc.Invoke(ctx, EscrowService_WithdrawAllPossible_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) IsWithdrawable(
	ctx context.Context, in *IsWithdrawableRequest, opts ...grpc.CallOption,
) (*IsWithdrawableResponse, error) {
	out := new(IsWithdrawableResponse)
	if err := c.cc.Invoke(ctx, EscrowService_IsWithdrawable_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetTotalWithdrawableAmount(
	ctx context.Context, in *GetTotalWithdrawableAmountRequest, opts ...grpc.CallOption,
) (*GetTotalWithdrawableAmountResponse, error) {
	out := new(GetTotalWithdrawableAmountResponse)
	if err := c.cc.Invoke(ctx, EscrowService_GetTotalWithdrawableAmount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetWithdrawableList(
	ctx context.Context, in *GetWithdrawableListRequest, opts ...grpc.CallOption,
) (*GetWithdrawableListResponse, error) {
	out := new(GetWithdrawableListResponse)
	if err := c.cc.Invoke(ctx, EscrowService_GetWithdrawableList_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetTotalNumDeposits(
	ctx context.Context, in *GetTotalNumDepositsRequest, opts ...grpc.CallOption,
) (*GetTotalNumDepositsResponse, error) {
	out := new(GetTotalNumDepositsResponse)
	if err := c.cc.Invoke(ctx, EscrowService_GetTotalNumDeposits_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetDeposit(
	ctx context.Context, in *GetDepositRequest, opts ...grpc.CallOption,
) (*GetDepositResponse, error) {
	out := new(GetDepositResponse)
	if err := c.cc.Invoke(ctx, EscrowService_GetDeposit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) ListDeposits(
	ctx context.Context, in *ListDepositsRequest, opts ...grpc.CallOption,
) (*ListDepositsResponse, error) {
	out := new(ListDepositsResponse)
	if err := c.cc.Invoke(ctx, EscrowService_ListDeposits_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetEscrowBalance(
	ctx context.Context, in *GetEscrowBalanceRequest, opts ...grpc.CallOption,
) (*GetEscrowBalanceResponse, error) {
	out := new(GetEscrowBalanceResponse)
	if err := c.cc.Invoke(ctx, EscrowService_GetEscrowBalance_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
