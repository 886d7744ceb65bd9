package client

import (
	"context"
	"intent-lab/domain"
	"intent-lab/grpc/server"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

type ClassifierClient struct {
	conn grpc.ClientConnInterface
}

func NewClassifierClient(conn grpc.ClientConnInterface) *ClassifierClient {
	return &ClassifierClient{conn: conn}
}

// Classify sends utterance to the remote classifier. gRPC status errors are
// returned untouched.
func (c *ClassifierClient) Classify(ctx context.Context, utterance string, opts ...grpc.CallOption) (domain.Prediction, error) {
	in, err := structpb.NewStruct(map[string]any{"utterance": utterance})
	if err != nil {
		return domain.Prediction{}, err
	}
	out := new(structpb.Struct)
	if err = c.conn.Invoke(ctx, server.ClassifyMethod, in, out, opts...); err != nil {
		return domain.Prediction{}, err
	}
	return toPrediction(out), nil
}

func toPrediction(s *structpb.Struct) domain.Prediction {
	fields := s.GetFields()
	values := fields["classifications"].GetListValue().GetValues()
	return domain.Prediction{
		Utterance: fields["utterance"].GetStringValue(),
		Language:  fields["language"].GetStringValue(),
		Intent:    fields["intent"].GetStringValue(),
		Classifications: lo.Map(values, func(v *structpb.Value, _ int) domain.Classification {
			entry := v.GetStructValue().GetFields()
			return domain.Classification{
				Label: entry["label"].GetStringValue(),
				Score: entry["score"].GetNumberValue(),
			}
		}),
	}
}
