package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDepartmentService(db)
	admin := createUser(t, db, true)

	dept, err := svc.Create(admin.ID, "Licensing", "spectrum licensing")
	require.NoError(t, err)

	_, err = svc.Create(admin.ID, "Licensing", "duplicate")
	require.Error(t, err)

	employee := createUser(t, db, false)
	require.NoError(t, db.Model(employee).Update("department_id", dept.ID).Error)
	// admins don't count as department employees
	kitchen := createUser(t, db, true)
	require.NoError(t, db.Model(kitchen).Update("department_id", dept.ID).Error)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].EmployeesCount)

	require.NoError(t, svc.Deactivate(dept.ID))

	views, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, views)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
}
