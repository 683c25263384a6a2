package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ludhill/avbackfronttodolistcrud/internal/dto"
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/stretchr/testify/suite"
)

// TaskHandlerTestSuite covers the task routes through the full router.
type TaskHandlerTestSuite struct {
	suite.Suite
	app *testApp
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.app = newTestApp(suite.T())
}

func (suite *TaskHandlerTestSuite) createList(title string, authorID uint64) *models.TodoList {
	list, err := suite.app.todoService.CreateList(title, authorID)
	suite.Require().NoError(err)
	return list
}

func (suite *TaskHandlerTestSuite) createTask(listID uint64, description string) *models.Task {
	task, err := suite.app.todoService.CreateTask(listID, description)
	suite.Require().NoError(err)
	return task
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, listPath(list.ID, "create_task"),
		map[string]string{"description": "Buy milk"}, cookies)

	suite.Equal(http.StatusCreated, w.Code)

	var created dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("Buy milk", created.Description)
	suite.False(created.Completed)
	suite.Equal(list.ID, created.ListID)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_EmptyDescriptionChangesNothing() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, listPath(list.ID, "create_task"),
		map[string]string{"description": ""}, cookies)

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.Require().NoError(suite.app.db.Model(&models.Task{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *TaskHandlerTestSuite) TestListTasks_OrderedOldestFirst() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	first := suite.createTask(list.ID, "First")
	suite.createTask(list.ID, "Second")

	err := suite.app.db.Model(&models.Task{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error
	suite.Require().NoError(err)

	cookies := suite.app.login(suite.T(), "alice", "pw1")
	w := suite.app.do(suite.T(), http.MethodGet, listPath(list.ID, "tasks"), nil, cookies)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		TodoList dto.TodoListDTO `json:"todo_list"`
		Tasks    []dto.TaskDTO   `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(list.ID, response.TodoList.ID)
	suite.Require().Len(response.Tasks, 2)
	suite.Equal("First", response.Tasks[0].Description)
	suite.Equal("Second", response.Tasks[1].Description)
}

func (suite *TaskHandlerTestSuite) TestListTasks_ForbiddenForNonAuthor() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	suite.app.register(suite.T(), "bob", "pw2")
	list := suite.createList("Alices list", alice.ID)

	cookies := suite.app.login(suite.T(), "bob", "pw2")
	w := suite.app.do(suite.T(), http.MethodGet, listPath(list.ID, "tasks"), nil, cookies)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestTaskUnderDifferentListIsNotFound() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list1 := suite.createList("List one", alice.ID)
	list2 := suite.createList("List two", alice.ID)
	task := suite.createTask(list1.ID, "Buy milk")

	cookies := suite.app.login(suite.T(), "alice", "pw1")

	// The task exists, but not under list2
	w := suite.app.do(suite.T(), http.MethodPost, taskPath(list2.ID, task.ID, "toggle_task"), nil, cookies)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestMalformedTaskIDIsBadRequest() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost,
		fmt.Sprintf("/%d/xyz/toggle_task", list.ID), nil, cookies)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "INVALID_INPUT")
}

func (suite *TaskHandlerTestSuite) TestToggleTwiceRestoresCompleted() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	task := suite.createTask(list.ID, "Buy milk")
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, taskPath(list.ID, task.ID, "toggle_task"), nil, cookies)
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.app.db.First(&stored, task.ID).Error)
	suite.True(stored.Completed)

	w = suite.app.do(suite.T(), http.MethodPost, taskPath(list.ID, task.ID, "toggle_task"), nil, cookies)
	suite.Equal(http.StatusOK, w.Code)

	suite.Require().NoError(suite.app.db.First(&stored, task.ID).Error)
	suite.False(stored.Completed)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_SetsDescriptionAndCompleted() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	task := suite.createTask(list.ID, "Buy milk")
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, taskPath(list.ID, task.ID, "update_task"),
		map[string]any{"description": "Buy oat milk", "completed": true}, cookies)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.app.db.First(&stored, task.ID).Error)
	suite.Equal("Buy oat milk", stored.Description)
	suite.True(stored.Completed)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_EmptyDescriptionChangesNothing() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	task := suite.createTask(list.ID, "Buy milk")
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, taskPath(list.ID, task.ID, "update_task"),
		map[string]any{"description": "", "completed": true}, cookies)

	suite.Equal(http.StatusBadRequest, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.app.db.First(&stored, task.ID).Error)
	suite.Equal("Buy milk", stored.Description)
	suite.False(stored.Completed)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_RemovesRow() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	task := suite.createTask(list.ID, "Buy milk")
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodPost, taskPath(list.ID, task.ID, "delete_task"), nil, cookies)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.Require().NoError(suite.app.db.Model(&models.Task{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *TaskHandlerTestSuite) TestEditForm_ReturnsTaskAndList() {
	alice := suite.app.register(suite.T(), "alice", "pw1")
	list := suite.createList("Groceries", alice.ID)
	task := suite.createTask(list.ID, "Buy milk")
	cookies := suite.app.login(suite.T(), "alice", "pw1")

	w := suite.app.do(suite.T(), http.MethodGet, taskPath(list.ID, task.ID, "update_task"), nil, cookies)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		TodoList dto.TodoListDTO `json:"todo_list"`
		Task     dto.TaskDTO     `json:"task"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(list.ID, response.TodoList.ID)
	suite.Equal(task.ID, response.Task.ID)
}

// TestFullUserJourney walks register -> login -> create list -> create
// task -> toggle -> list tasks through the real router.
func (suite *TaskHandlerTestSuite) TestFullUserJourney() {
	t := suite.T()

	w := suite.app.do(t, http.MethodPost, "/auth/register",
		map[string]string{"username": "alice", "password": "pw1"}, nil)
	suite.Equal(http.StatusCreated, w.Code)

	cookies := suite.app.login(t, "alice", "pw1")

	w = suite.app.do(t, http.MethodPost, "/create_list", map[string]string{"title": "Groceries"}, cookies)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var list dto.TodoListDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))

	w = suite.app.do(t, http.MethodPost, listPath(list.ID, "create_task"),
		map[string]string{"description": "Buy milk"}, cookies)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var task dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))

	w = suite.app.do(t, http.MethodPost, taskPath(list.ID, task.ID, "toggle_task"), nil, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.app.do(t, http.MethodGet, listPath(list.ID, "tasks"), nil, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	suite.True(response.Tasks[0].Completed)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
