package server_test

import (
	"context"
	"intent-lab/domain"
	"intent-lab/grpc/client"
	"intent-lab/grpc/server"
	"intent-lab/network"
	"intent-lab/services"
	"intent-lab/tokenizer"
	"log/slog"
	"net"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T, service services.IClassifierService) *client.ClassifierClient {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	listener := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	server.RegisterClassifierServiceServer(s, server.NewClassifierServer(log, service))
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return client.NewClassifierClient(conn)
}

func newService(t *testing.T) *services.ClassifierService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	n, err := network.New(log, network.DefaultConfig())
	require.NoError(t, err)
	return services.NewClassifierService(log, nil, n)
}

func TestClassifierServer_Classify(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service := newService(t)
	tok := tokenizer.New()
	_, err := service.TrainExamples(ctx, []domain.Example{
		{Input: tok.Bag("hello there"), Output: domain.NewBag("greet")},
		{Input: tok.Bag("bye bye"), Output: domain.NewBag("farewell")},
	})
	req.NoError(err)
	classifier := startServer(t, service)

	prediction, err := classifier.Classify(ctx, "Hello!")
	req.NoError(err)

	req.Equal("Hello!", prediction.Utterance)
	req.Equal("greet", prediction.Intent)
	req.Len(prediction.Classifications, 2)
	req.Equal("greet", prediction.Classifications[0].Label)
	req.Equal("farewell", prediction.Classifications[1].Label)
	req.Greater(prediction.Classifications[0].Score, prediction.Classifications[1].Score)
}

func TestClassifierServer_Error_Codes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	classifier := startServer(t, newService(t))

	_, err := classifier.Classify(ctx, "")
	req.Equal(codes.InvalidArgument, status.Code(err))

	_, err = classifier.Classify(ctx, "hello")
	req.Equal(codes.FailedPrecondition, status.Code(err))
}
