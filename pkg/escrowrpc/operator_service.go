package escrowrpc

import (
	"context"

	"google.golang.org/grpc"
)

const OperatorServiceName = "timelock.v1.OperatorService"

const (
	OperatorService_AddWebhook_FullMethodName    = "/timelock.v1.OperatorService/AddWebhook"
	OperatorService_RemoveWebhook_FullMethodName = "/timelock.v1.OperatorService/RemoveWebhook"
	OperatorService_ListWebhooks_FullMethodName  = "/timelock.v1.OperatorService/ListWebhooks"
	OperatorService_Faucet_FullMethodName        = "/timelock.v1.OperatorService/Faucet"
	OperatorService_Approve_FullMethodName       = "/timelock.v1.OperatorService/Approve"
	OperatorService_BalanceOf_FullMethodName     = "/timelock.v1.OperatorService/BalanceOf"
	OperatorService_AdvanceClock_FullMethodName  = "/timelock.v1.OperatorService/AdvanceClock"
)

// OperatorServiceServer is reserved to the operator of the daemon.
type OperatorServiceServer interface {
	AddWebhook(context.Context, *AddWebhookRequest) (*AddWebhookResponse, error)
	RemoveWebhook(context.Context, *RemoveWebhookRequest) (*RemoveWebhookResponse, error)
	ListWebhooks(context.Context, *ListWebhooksRequest) (*ListWebhooksResponse, error)
	Faucet(context.Context, *FaucetRequest) (*FaucetResponse, error)
	Approve(context.Context, *ApproveRequest) (*ApproveResponse, error)
	BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error)
	AdvanceClock(context.Context, *AdvanceClockRequest) (*AdvanceClockResponse, error)
}

func RegisterOperatorServiceServer(s grpc.ServiceRegistrar, srv OperatorServiceServer) {
	s.RegisterService(&OperatorService_ServiceDesc, srv)
}

var OperatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: OperatorServiceName,
	HandlerType: (*OperatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddWebhook",
			Handler:    _OperatorService_AddWebhook_Handler,
		},
		{
			MethodName: "RemoveWebhook",
			Handler:    _OperatorService_RemoveWebhook_Handler,
		},
		{
			MethodName: "ListWebhooks",
			Handler:    _OperatorService_ListWebhooks_Handler,
		},
		{
			MethodName: "Faucet",
			Handler:    _OperatorService_Faucet_Handler,
		},
		{
			MethodName: "Approve",
			Handler:    _OperatorService_Approve_Handler,
		},
		{
			MethodName: "BalanceOf",
			Handler:    _OperatorService_BalanceOf_Handler,
		},
		{
			MethodName: "AdvanceClock",
			Handler:    _OperatorService_AdvanceClock_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pkg/escrowrpc/operator_service.go",
}

var _OperatorService_AddWebhook_Handler = unaryHandler(
	OperatorService_AddWebhook_FullMethodName,
	func() interface{} { return new(AddWebhookRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).AddWebhook(ctx, req.(*AddWebhookRequest))
	},
)

var _OperatorService_RemoveWebhook_Handler = unaryHandler(
	OperatorService_RemoveWebhook_FullMethodName,
	func() interface{} { return new(RemoveWebhookRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).RemoveWebhook(ctx, req.(*RemoveWebhookRequest))
	},
)

var _OperatorService_ListWebhooks_Handler = unaryHandler(
	OperatorService_ListWebhooks_FullMethodName,
	func() interface{} { return new(ListWebhooksRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).ListWebhooks(ctx, req.(*ListWebhooksRequest))
	},
)

var _OperatorService_Faucet_Handler = unaryHandler(
	OperatorService_Faucet_FullMethodName,
	func() interface{} { return new(FaucetRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).Faucet(ctx, req.(*FaucetRequest))
	},
)

var _OperatorService_Approve_Handler = unaryHandler(
	OperatorService_Approve_FullMethodName,
	func() interface{} { return new(ApproveRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).Approve(ctx, req.(*ApproveRequest))
	},
)

var _OperatorService_BalanceOf_Handler = unaryHandler(
	OperatorService_BalanceOf_FullMethodName,
	func() interface{} { return new(BalanceOfRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).BalanceOf(ctx, req.(*BalanceOfRequest))
	},
)

var _OperatorService_AdvanceClock_Handler = unaryHandler(
	OperatorService_AdvanceClock_FullMethodName,
	func() interface{} { return new(AdvanceClockRequest) },
	func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).AdvanceClock(ctx, req.(*AdvanceClockRequest))
	},
)

type OperatorServiceClient interface {
	AddWebhook(ctx context.Context, in *AddWebhookRequest, opts ...grpc.CallOption) (*AddWebhookResponse, error)
	RemoveWebhook(ctx context.Context, in *RemoveWebhookRequest, opts ...grpc.CallOption) (*RemoveWebhookResponse, error)
	ListWebhooks(ctx context.Context, in *ListWebhooksRequest, opts ...grpc.CallOption) (*ListWebhooksResponse, error)
	Faucet(ctx context.Context, in *FaucetRequest, opts ...grpc.CallOption) (*FaucetResponse, error)
	Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error)
	BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error)
	AdvanceClock(ctx context.Context, in *AdvanceClockRequest, opts ...grpc.CallOption) (*AdvanceClockResponse, error)
}

type operatorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOperatorServiceClient(cc grpc.ClientConnInterface) OperatorServiceClient {
	return &operatorServiceClient{cc}
}

func (c *operatorServiceClient) AddWebhook(
	ctx context.Context, in *AddWebhookRequest, opts ...grpc.CallOption,
) (*AddWebhookResponse, error) {
	out := new(AddWebhookResponse)
	if err := c.cc.Invoke(ctx, OperatorService_AddWebhook_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) RemoveWebhook(
	ctx context.Context, in *RemoveWebhookRequest, opts ...grpc.CallOption,
) (*RemoveWebhookResponse, error) {
	out := new(RemoveWebhookResponse)
	if err := c.cc.Invoke(ctx, OperatorService_RemoveWebhook_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) ListWebhooks(
	ctx context.Context, in *ListWebhooksRequest, opts ...grpc.CallOption,
) (*ListWebhooksResponse, error) {
	out := new(ListWebhooksResponse)
	if err := c.cc.Invoke(ctx, OperatorService_ListWebhooks_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) Faucet(
	ctx context.Context, in *FaucetRequest, opts ...grpc.CallOption,
) (*FaucetResponse, error) {
	out := new(FaucetResponse)
	if err := c.cc.Invoke(ctx, OperatorService_Faucet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) Approve(
	ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption,
) (*ApproveResponse, error) {
	out := new(ApproveResponse)
	if err := c.cc.Invoke(ctx, OperatorService_Approve_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) BalanceOf(
	ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption,
) (*BalanceOfResponse, error) {
	out := new(BalanceOfResponse)
	if err := c.cc.Invoke(ctx, OperatorService_BalanceOf_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) AdvanceClock(
	ctx context.Context, in *AdvanceClockRequest, opts ...grpc.CallOption,
) (*AdvanceClockResponse, error) {
	out := new(AdvanceClockResponse)
	if err := c.cc.Invoke(ctx, OperatorService_AdvanceClock_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
