package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_source.go -package=mocks github.com/bionicotaku/lingo-services-discover/internal/services VideoSource
