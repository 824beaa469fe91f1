package s3store

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestStore_Put_UsesPublicBaseURL(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, Options{Bucket: "tailtime-photos", Region: "us-east-1", PublicBaseURL: "https://cdn.example.com/"})

	url, err := store.Put(context.Background(), "pet-photos/p1-1.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/pet-photos/p1-1.png", url)
	assert.Equal(t, "tailtime-photos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.in.ContentType))
	assert.Equal(t, s3types.ObjectCannedACLPublicRead, fake.in.ACL)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, fake.body)
}

func TestStore_Put_DefaultsToBucketURL(t *testing.T) {
	store := newStore(&fakeS3{}, Options{Bucket: "b", Region: "sa-east-1"})

	url, err := store.Put(context.Background(), "pet-photos/x.jpg", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://b.s3.sa-east-1.amazonaws.com/pet-photos/x.jpg", url)
}

func TestStore_Put_Error(t *testing.T) {
	boom := errors.New("access denied")
	store := newStore(&fakeS3{err: boom}, Options{Bucket: "b", Region: "us-east-1"})

	_, err := store.Put(context.Background(), "k", "image/png", []byte("x"))
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Options{Region: "us-east-1"})
	assert.Error(t, err)
}
