package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePerms(t *testing.T) {
	assert.True(t, SuperAdmin.Has(Create))
	assert.True(t, Admin.Has(Delete))
	assert.True(t, Normal.Has(Create))
	assert.False(t, Normal.Has(Delete))
	assert.True(t, Anonymous.Has(Read))
	assert.False(t, Anonymous.Has(Create))
	assert.False(t, Role("ghost").Has(Read))
}

func TestPageReqNormalize(t *testing.T) {
	req := &PageReq{Page: -3, PageSize: 500}
	req.Normalize()

	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 100, req.PageSize)
	assert.Equal(t, 0, req.Offset())

	req = &PageReq{Page: 3, PageSize: 10}
	req.Normalize()
	assert.Equal(t, 20, req.Offset())
}
