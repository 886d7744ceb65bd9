package server

import (
	"context"
	stderrors "errors"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/services"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName    = "intentlab.ClassifierService"
	ClassifyMethod = "/" + ServiceName + "/Classify"
)

// ClassifierServiceServer answers Classify calls. Requests carry an
// "utterance" string, responses the ranked prediction.
type ClassifierServiceServer interface {
	Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var ClassifierServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClassifierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Classify", Handler: classifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "intentlab/classifier",
}

func RegisterClassifierServiceServer(s grpc.ServiceRegistrar, srv ClassifierServiceServer) {
	s.RegisterService(&ClassifierServiceDesc, srv)
}

func classifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifierServiceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClassifyMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClassifierServiceServer).Classify(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type ClassifierServer struct {
	log     *slog.Logger
	service services.IClassifierService
}

func NewClassifierServer(log *slog.Logger, service services.IClassifierService) *ClassifierServer {
	return &ClassifierServer{log: log, service: service}
}

func (s *ClassifierServer) Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	start := time.Now()
	utterance := req.GetFields()["utterance"].GetStringValue()

	prediction, err := s.service.Classify(ctx, utterance)
	switch {
	case stderrors.Is(err, errors.ErrEmptyUtterance):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, errors.ErrNetworkNotReady):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case err != nil:
		s.log.Error("Classification failed", "error", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.log.Debug("Utterance classified",
		"intent", prediction.Intent,
		"lang", prediction.Language,
		"latency_us", time.Since(start).Microseconds())
	return fromPrediction(prediction)
}

func fromPrediction(prediction domain.Prediction) (*structpb.Struct, error) {
	classifications := lo.Map(prediction.Classifications, func(c domain.Classification, _ int) any {
		return map[string]any{"label": c.Label, "score": c.Score}
	})
	return structpb.NewStruct(map[string]any{
		"utterance":       prediction.Utterance,
		"language":        prediction.Language,
		"intent":          prediction.Intent,
		"classifications": classifications,
	})
}
