// Package docs holds the OpenAPI document served at /swagger. It mirrors
// the swag annotations on the HTTP handlers; regenerate it with
// swag init -g cmd/server/main.go --v3.1 after changing them.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "components": {
        "schemas": {
            "attachment.Response": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "record_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "file_url": {
                        "type": "string"
                    },
                    "file_name": {
                        "type": "string"
                    },
                    "file_type": {
                        "type": "string"
                    },
                    "file_size": {
                        "type": "integer"
                    },
                    "storage_key": {
                        "type": "string"
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "catalog.CreateExpenseTypeRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "name"
                ]
            },
            "catalog.CreateMedicineRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "description": {
                        "type": "string"
                    },
                    "day_of_administration": {
                        "type": "integer"
                    }
                },
                "required": [
                    "name"
                ]
            },
            "catalog.ExpenseTypeResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    }
                }
            },
            "catalog.MedicineResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "description": {
                        "type": "string"
                    },
                    "day_of_administration": {
                        "type": "integer"
                    }
                }
            },
            "farm.CreateFarmRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "location": {
                        "type": "string",
                        "maxLength": 500
                    }
                },
                "required": [
                    "name"
                ]
            },
            "farm.CreatePoultryStatusRequest": {
                "type": "object",
                "properties": {
                    "farm_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "batch_name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "opening_chicks": {
                        "type": "integer"
                    },
                    "dead_chicks": {
                        "type": "integer"
                    }
                },
                "required": [
                    "farm_id",
                    "batch_name"
                ]
            },
            "farm.CreateWarehouseRequest": {
                "type": "object",
                "properties": {
                    "farm_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "farm_id",
                    "name"
                ]
            },
            "farm.FarmResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "location": {
                        "type": "string"
                    },
                    "user_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "is_active": {
                        "type": "boolean"
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updated_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "farm.PoultryStatusResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "farm_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "batch_name": {
                        "type": "string"
                    },
                    "opening_chicks": {
                        "type": "integer"
                    },
                    "dead_chicks": {
                        "type": "integer"
                    },
                    "remaining_chicks": {
                        "type": "integer"
                    }
                }
            },
            "farm.UpdateFarmRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "location": {
                        "type": "string",
                        "maxLength": 500
                    },
                    "is_active": {
                        "type": "boolean"
                    }
                },
                "required": [
                    "name"
                ]
            },
            "farm.WarehouseResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "farm_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    }
                }
            },
            "handler.APIResponse-array_attachment_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/attachment.Response"
                        }
                    }
                }
            },
            "handler.APIResponse-array_catalog_ExpenseTypeResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/catalog.ExpenseTypeResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_catalog_MedicineResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/catalog.MedicineResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_farm_FarmResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/farm.FarmResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_farm_PoultryStatusResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/farm.PoultryStatusResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_farm_WarehouseResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/farm.WarehouseResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_identity_ProfileResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/identity.ProfileResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_inventory_MaterialResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/inventory.MaterialResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_inventory_NamedResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/inventory.NamedResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_invoice_SummaryResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/invoice.SummaryResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_ledger_ExpenseResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-array_manufacturing_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/manufacturing.Response"
                        }
                    }
                }
            },
            "handler.APIResponse-array_medication_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/medication.Response"
                        }
                    }
                }
            },
            "handler.APIResponse-array_report_DailyReportResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/report.DailyReportResponse"
                        }
                    }
                }
            },
            "handler.APIResponse-attachment_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/attachment.Response"
                    }
                }
            },
            "handler.APIResponse-catalog_ExpenseTypeResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/catalog.ExpenseTypeResponse"
                    }
                }
            },
            "handler.APIResponse-catalog_MedicineResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/catalog.MedicineResponse"
                    }
                }
            },
            "handler.APIResponse-farm_FarmResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/farm.FarmResponse"
                    }
                }
            },
            "handler.APIResponse-farm_PoultryStatusResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/farm.PoultryStatusResponse"
                    }
                }
            },
            "handler.APIResponse-farm_WarehouseResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/farm.WarehouseResponse"
                    }
                }
            },
            "handler.APIResponse-handler_HealthResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/handler.HealthResponse"
                    }
                }
            },
            "handler.APIResponse-handler_IDData": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/handler.IDData"
                    }
                }
            },
            "handler.APIResponse-handler_SystemInfoResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/handler.SystemInfoResponse"
                    }
                }
            },
            "handler.APIResponse-identity_ProfileResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/identity.ProfileResponse"
                    }
                }
            },
            "handler.APIResponse-inventory_MaterialResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/inventory.MaterialResponse"
                    }
                }
            },
            "handler.APIResponse-inventory_NamedResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/inventory.NamedResponse"
                    }
                }
            },
            "handler.APIResponse-invoice_InvoiceResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/invoice.InvoiceResponse"
                    }
                }
            },
            "handler.APIResponse-ledger_LineChange": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/ledger.LineChange"
                    }
                }
            },
            "handler.APIResponse-manufacturing_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/manufacturing.Response"
                    }
                }
            },
            "handler.APIResponse-medication_Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/medication.Response"
                    }
                }
            },
            "handler.APIResponse-report_DailyReportResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": true
                    },
                    "error": {
                        "type": "string"
                    },
                    "data": {
                        "$ref": "#/components/schemas/report.DailyReportResponse"
                    }
                }
            },
            "handler.CheckedRequest": {
                "type": "object",
                "properties": {
                    "checked": {
                        "type": "boolean",
                        "example": true
                    }
                }
            },
            "handler.ErrorResponse": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean",
                        "example": false
                    },
                    "error": {
                        "type": "string",
                        "example": "invoice not found"
                    }
                }
            },
            "handler.HealthResponse": {
                "type": "object",
                "properties": {
                    "status": {
                        "type": "string",
                        "example": "ok"
                    },
                    "checks": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "string"
                        }
                    }
                }
            },
            "handler.IDData": {
                "type": "string"
            },
            "handler.SystemInfoResponse": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "example": "Farms API"
                    },
                    "version": {
                        "type": "string",
                        "example": "1.0.0"
                    },
                    "go_version": {
                        "type": "string",
                        "example": "go1.25.5"
                    },
                    "uptime": {
                        "type": "string",
                        "example": "1h30m45s"
                    }
                }
            },
            "identity.AssignFarmRequest": {
                "type": "object",
                "properties": {
                    "farm_id": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "required": [
                    "farm_id"
                ]
            },
            "identity.CreateProfileRequest": {
                "type": "object",
                "properties": {
                    "user_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "email": {
                        "type": "string",
                        "format": "email",
                        "maxLength": 254
                    },
                    "fname": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "user_role": {
                        "type": "string",
                        "enum": [
                            "admin",
                            "sub_admin",
                            "farmer"
                        ]
                    }
                },
                "required": [
                    "user_id",
                    "email",
                    "fname",
                    "user_role"
                ]
            },
            "identity.ProfileResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "email": {
                        "type": "string"
                    },
                    "fname": {
                        "type": "string"
                    },
                    "user_role": {
                        "type": "string"
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "identity.UpdateProfileRequest": {
                "type": "object",
                "properties": {
                    "email": {
                        "type": "string",
                        "format": "email",
                        "maxLength": 254
                    },
                    "fname": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "email",
                    "fname"
                ]
            },
            "identity.UpdateRoleRequest": {
                "type": "object",
                "properties": {
                    "user_role": {
                        "type": "string",
                        "enum": [
                            "admin",
                            "sub_admin",
                            "farmer"
                        ]
                    }
                },
                "required": [
                    "user_role"
                ]
            },
            "inventory.CreateMaterialRequest": {
                "type": "object",
                "properties": {
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "opening_balance": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "purchases": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "sales": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "consumption": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "manufacturing": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                },
                "required": [
                    "warehouse_id",
                    "material_name_id"
                ]
            },
            "inventory.MaterialResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "opening_balance": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "purchases": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "sales": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "consumption": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "manufacturing": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "current_balance": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "inventory.NameRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "name"
                ]
            },
            "inventory.NamedResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    }
                }
            },
            "inventory.UpdateMaterialRequest": {
                "type": "object",
                "properties": {
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "opening_balance": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "purchases": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "sales": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "consumption": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "manufacturing": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "invoice.CreateInvoiceRequest": {
                "type": "object",
                "properties": {
                    "invoice_type": {
                        "type": "string",
                        "enum": [
                            "buy",
                            "sell"
                        ]
                    },
                    "invoice_number": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "invoice_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "invoice_time": {
                        "type": "string",
                        "maxLength": 20
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "poultry_status_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/invoice.ItemRequest"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseInput"
                        }
                    }
                },
                "required": [
                    "invoice_type",
                    "invoice_number",
                    "invoice_date",
                    "warehouse_id"
                ]
            },
            "invoice.InvoiceResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_type": {
                        "type": "string"
                    },
                    "invoice_number": {
                        "type": "string"
                    },
                    "invoice_date": {
                        "type": "string"
                    },
                    "invoice_time": {
                        "type": "string"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "poultry_status_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "total_value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "checked": {
                        "type": "boolean"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "warehouse_name": {
                        "type": "string"
                    },
                    "farm_name": {
                        "type": "string"
                    },
                    "poultry_batch_name": {
                        "type": "string"
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/invoice.ItemResponse"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseResponse"
                        }
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updated_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "invoice.ItemRequest": {
                "type": "object",
                "properties": {
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "weight": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "invoice.ItemResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "weight": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "invoice.SummaryResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_type": {
                        "type": "string"
                    },
                    "invoice_number": {
                        "type": "string"
                    },
                    "invoice_date": {
                        "type": "string"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "warehouse_name": {
                        "type": "string"
                    },
                    "total_value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "checked": {
                        "type": "boolean"
                    }
                }
            },
            "invoice.UpdateInvoiceRequest": {
                "type": "object",
                "properties": {
                    "invoice_type": {
                        "type": "string",
                        "enum": [
                            "buy",
                            "sell"
                        ]
                    },
                    "invoice_number": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "invoice_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "invoice_time": {
                        "type": "string",
                        "maxLength": 20
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "poultry_status_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    }
                },
                "required": [
                    "invoice_type",
                    "invoice_number",
                    "invoice_date",
                    "warehouse_id"
                ]
            },
            "ledger.ExpenseInput": {
                "type": "object",
                "properties": {
                    "expense_type_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "account_name": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "expense_type_id"
                ]
            },
            "ledger.ExpenseResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "expense_type_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "account_name": {
                        "type": "string"
                    }
                }
            },
            "ledger.LineChange": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "total_value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "manufacturing.CreateRequest": {
                "type": "object",
                "properties": {
                    "invoice_number": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "blend_name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "manufacturing_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "manufacturing_time": {
                        "type": "string",
                        "maxLength": 20
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/manufacturing.ItemRequest"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseInput"
                        }
                    }
                },
                "required": [
                    "invoice_number",
                    "warehouse_id",
                    "manufacturing_date"
                ]
            },
            "manufacturing.ItemRequest": {
                "type": "object",
                "properties": {
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "blend_count": {
                        "type": "integer"
                    },
                    "weight": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "manufacturing.ItemResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "blend_count": {
                        "type": "integer"
                    },
                    "weight": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "manufacturing.Response": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_number": {
                        "type": "string"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "blend_name": {
                        "type": "string"
                    },
                    "material_name_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "unit_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "manufacturing_date": {
                        "type": "string"
                    },
                    "manufacturing_time": {
                        "type": "string"
                    },
                    "total_value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/manufacturing.ItemResponse"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseResponse"
                        }
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "medication.CreateRequest": {
                "type": "object",
                "properties": {
                    "invoice_number": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "poultry_status_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "consumption_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "consumption_time": {
                        "type": "string",
                        "maxLength": 20
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/medication.ItemRequest"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseInput"
                        }
                    }
                },
                "required": [
                    "invoice_number",
                    "warehouse_id",
                    "consumption_date"
                ]
            },
            "medication.ItemRequest": {
                "type": "object",
                "properties": {
                    "medicine_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "administration_day": {
                        "type": "integer"
                    },
                    "administration_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                },
                "required": [
                    "medicine_id"
                ]
            },
            "medication.ItemResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "medicine_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "administration_day": {
                        "type": "integer"
                    },
                    "administration_date": {
                        "type": "string"
                    },
                    "quantity": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "price": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    }
                }
            },
            "medication.Response": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoice_number": {
                        "type": "string"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "poultry_status_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "consumption_date": {
                        "type": "string"
                    },
                    "consumption_time": {
                        "type": "string"
                    },
                    "total_value": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "items": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/medication.ItemResponse"
                        }
                    },
                    "expenses": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/ledger.ExpenseResponse"
                        }
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "report.CreateDailyReportRequest": {
                "type": "object",
                "properties": {
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "report_date": {
                        "type": "string",
                        "format": "date"
                    },
                    "report_time": {
                        "type": "string",
                        "maxLength": 20
                    },
                    "production_eggs_healthy": {
                        "type": "integer"
                    },
                    "production_eggs_deformed": {
                        "type": "integer"
                    },
                    "eggs_sold": {
                        "type": "integer"
                    },
                    "eggs_gift": {
                        "type": "integer"
                    },
                    "previous_eggs_balance": {
                        "type": "integer"
                    },
                    "carton_consumption": {
                        "type": "integer"
                    },
                    "chicks_before": {
                        "type": "integer"
                    },
                    "chicks_dead": {
                        "type": "integer"
                    },
                    "feed_daily_kg": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "feed_monthly_kg": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "feed_ratio": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    }
                },
                "required": [
                    "warehouse_id",
                    "report_date"
                ]
            },
            "report.DailyReportResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "warehouse_id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "report_date": {
                        "type": "string"
                    },
                    "report_time": {
                        "type": "string"
                    },
                    "production_eggs_healthy": {
                        "type": "integer"
                    },
                    "production_eggs_deformed": {
                        "type": "integer"
                    },
                    "production_eggs": {
                        "type": "integer"
                    },
                    "eggs_sold": {
                        "type": "integer"
                    },
                    "eggs_gift": {
                        "type": "integer"
                    },
                    "previous_eggs_balance": {
                        "type": "integer"
                    },
                    "current_eggs_balance": {
                        "type": "integer"
                    },
                    "carton_consumption": {
                        "type": "integer"
                    },
                    "chicks_before": {
                        "type": "integer"
                    },
                    "chicks_dead": {
                        "type": "integer"
                    },
                    "chicks_after": {
                        "type": "integer"
                    },
                    "feed_daily_kg": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "feed_monthly_kg": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "feed_ratio": {
                        "type": "string",
                        "format": "decimal",
                        "example": "0"
                    },
                    "checked": {
                        "type": "boolean"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "created_at": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            }
        },
        "securitySchemes": {
            "BearerAuth": {
                "description": "Bearer token issued by the auth provider. Format: \"Bearer {token}\"",
                "in": "header",
                "name": "Authorization",
                "type": "apiKey"
            }
        }
    },
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "openapi": "3.1.0",
    "paths": {
        "/admin/users": {
            "get": {
                "operationId": "listUsers",
                "summary": "List users",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_identity_ProfileResponse"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "operationId": "createUser",
                "summary": "Create a user profile",
                "description": "Registers the profile of a user that already exists in the auth provider",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Profile",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/identity.CreateProfileRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-identity_ProfileResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/users/{id}": {
            "get": {
                "operationId": "getUser",
                "summary": "Get a user",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-identity_ProfileResponse"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "put": {
                "operationId": "updateUser",
                "summary": "Update a user profile",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Profile",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/identity.UpdateProfileRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-identity_ProfileResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteUser",
                "summary": "Delete a user",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/users/{id}/farm": {
            "put": {
                "operationId": "assignFarm",
                "summary": "Assign a farm to a user",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Farm",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/identity.AssignFarmRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/admin/users/{id}/role": {
            "patch": {
                "operationId": "updateUserRole",
                "summary": "Change the role of a user",
                "tags": [
                    "admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Role",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/identity.UpdateRoleRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-identity_ProfileResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/daily-reports": {
            "post": {
                "operationId": "createDailyReport",
                "summary": "Submit a daily report",
                "description": "Records egg production, sales, mortality and feed for one warehouse and day. Derived balances are computed on save.",
                "tags": [
                    "daily-reports"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Report",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/report.CreateDailyReportRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-report_DailyReportResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listDailyReports",
                "summary": "List daily reports",
                "tags": [
                    "daily-reports"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "warehouse_id",
                        "in": "query",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "description": "From date",
                        "schema": {
                            "type": "string",
                            "format": "date"
                        }
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "description": "To date",
                        "schema": {
                            "type": "string",
                            "format": "date"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_report_DailyReportResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/daily-reports/{id}": {
            "get": {
                "operationId": "getDailyReport",
                "summary": "Get a daily report",
                "tags": [
                    "daily-reports"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Report ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-report_DailyReportResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteDailyReport",
                "summary": "Delete a daily report",
                "tags": [
                    "daily-reports"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Report ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/daily-reports/{id}/attachments": {
            "post": {
                "operationId": "uploadAttachmentDailyReports",
                "summary": "Attach a file to a record",
                "description": "Stores the file body in the blob store and records its metadata. The blob is removed again if the metadata cannot be saved.",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "multipart/form-data": {
                            "schema": {
                                "type": "object",
                                "properties": {
                                    "file": {
                                        "type": "string",
                                        "format": "binary",
                                        "description": "File"
                                    }
                                },
                                "required": [
                                    "file"
                                ]
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-attachment_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listAttachmentsDailyReports",
                "summary": "List the files of a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_attachment_Response"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/daily-reports/{id}/attachments/{attachmentId}": {
            "delete": {
                "operationId": "deleteAttachmentDailyReports",
                "summary": "Remove a file from a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "attachmentId",
                        "in": "path",
                        "description": "Attachment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/daily-reports/{id}/checked": {
            "patch": {
                "operationId": "setDailyReportChecked",
                "summary": "Mark a daily report as reviewed",
                "tags": [
                    "daily-reports"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Report ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Checked flag",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.CheckedRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/expense-types": {
            "post": {
                "operationId": "createExpenseType",
                "summary": "Create an expense type",
                "tags": [
                    "expense-types"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Expense type",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/catalog.CreateExpenseTypeRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-catalog_ExpenseTypeResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listExpenseTypes",
                "summary": "List expense types",
                "tags": [
                    "expense-types"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_catalog_ExpenseTypeResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/expense-types/{id}": {
            "delete": {
                "operationId": "deleteExpenseType",
                "summary": "Delete an expense type",
                "tags": [
                    "expense-types"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Expense type ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/farms": {
            "post": {
                "operationId": "createFarm",
                "summary": "Create a farm",
                "tags": [
                    "farms"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Farm",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/farm.CreateFarmRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-farm_FarmResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listFarms",
                "summary": "List farms",
                "tags": [
                    "farms"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_farm_FarmResponse"
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/farms/{id}": {
            "get": {
                "operationId": "getFarm",
                "summary": "Get a farm",
                "tags": [
                    "farms"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Farm ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-farm_FarmResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "put": {
                "operationId": "updateFarm",
                "summary": "Update a farm",
                "tags": [
                    "farms"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Farm ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Farm",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/farm.UpdateFarmRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-farm_FarmResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteFarm",
                "summary": "Delete a farm",
                "tags": [
                    "farms"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Farm ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "operationId": "health",
                "summary": "Health check",
                "description": "Pings the database and cache. Answers 503 when any of them fails.",
                "tags": [
                    "system"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_HealthResponse"
                                }
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_HealthResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices": {
            "post": {
                "operationId": "createInvoice",
                "summary": "Create an invoice",
                "description": "Creates the invoice with its items and expenses. total_value is computed from the lines.",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Invoice",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/invoice.CreateInvoiceRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-invoice_InvoiceResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listInvoices",
                "summary": "List invoices",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "description": "Invoice type",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "buy",
                                "sell"
                            ]
                        }
                    },
                    {
                        "name": "warehouse_id",
                        "in": "query",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "description": "From date",
                        "schema": {
                            "type": "string",
                            "format": "date"
                        }
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "description": "To date",
                        "schema": {
                            "type": "string",
                            "format": "date"
                        }
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "description": "Page number",
                        "schema": {
                            "type": "integer"
                        }
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "description": "Page size",
                        "schema": {
                            "type": "integer"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_invoice_SummaryResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}": {
            "get": {
                "operationId": "getInvoice",
                "summary": "Get an invoice",
                "description": "Returns the invoice with its lines and the names of its warehouse, farm and poultry batch",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-invoice_InvoiceResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "put": {
                "operationId": "updateInvoice",
                "summary": "Update an invoice header",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Header",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/invoice.UpdateInvoiceRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-invoice_InvoiceResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteInvoice",
                "summary": "Delete an invoice",
                "description": "Removes the invoice with its items, expenses and attachments",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/attachments": {
            "post": {
                "operationId": "uploadAttachmentInvoices",
                "summary": "Attach a file to a record",
                "description": "Stores the file body in the blob store and records its metadata. The blob is removed again if the metadata cannot be saved.",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "multipart/form-data": {
                            "schema": {
                                "type": "object",
                                "properties": {
                                    "file": {
                                        "type": "string",
                                        "format": "binary",
                                        "description": "File"
                                    }
                                },
                                "required": [
                                    "file"
                                ]
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-attachment_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listAttachmentsInvoices",
                "summary": "List the files of a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_attachment_Response"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/attachments/{attachmentId}": {
            "delete": {
                "operationId": "deleteAttachmentInvoices",
                "summary": "Remove a file from a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "attachmentId",
                        "in": "path",
                        "description": "Attachment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/checked": {
            "patch": {
                "operationId": "setInvoiceChecked",
                "summary": "Mark an invoice as reviewed",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Checked flag",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.CheckedRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/expenses": {
            "get": {
                "operationId": "listExpensesInvoices",
                "summary": "List the expenses of a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_ledger_ExpenseResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "operationId": "addExpenseInvoices",
                "summary": "Add an expense to a record",
                "description": "Inserts the expense line and returns the recomputed total_value",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Expense",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/ledger.ExpenseInput"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/expenses/{expenseId}": {
            "delete": {
                "operationId": "deleteExpenseInvoices",
                "summary": "Delete an expense from a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "expenseId",
                        "in": "path",
                        "description": "Expense ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/items": {
            "post": {
                "operationId": "addInvoiceItem",
                "summary": "Add an invoice item",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Item",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/invoice.ItemRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/items/{itemId}": {
            "delete": {
                "operationId": "deleteInvoiceItem",
                "summary": "Delete an invoice item",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "itemId",
                        "in": "path",
                        "description": "Item ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/invoices/{id}/pdf": {
            "get": {
                "operationId": "printInvoice",
                "summary": "Print an invoice as PDF",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "locale",
                        "in": "query",
                        "description": "Locale",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "ar",
                                "en"
                            ]
                        }
                    },
                    {
                        "name": "paper",
                        "in": "query",
                        "description": "Paper size",
                        "schema": {
                            "type": "string",
                            "enum": [
                                "A4",
                                "A5"
                            ]
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/pdf": {
                                "schema": {
                                    "type": "string",
                                    "format": "binary"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing": {
            "post": {
                "operationId": "createManufacturingBatch",
                "summary": "Record a manufacturing batch",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Batch",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/manufacturing.CreateRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-manufacturing_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listManufacturingBatches",
                "summary": "List manufacturing batches",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "warehouse_id",
                        "in": "query",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_manufacturing_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}": {
            "get": {
                "operationId": "getManufacturingBatch",
                "summary": "Get a manufacturing batch",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Batch ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-manufacturing_Response"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteManufacturingBatch",
                "summary": "Delete a manufacturing batch",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Batch ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/attachments": {
            "post": {
                "operationId": "uploadAttachmentManufacturing",
                "summary": "Attach a file to a record",
                "description": "Stores the file body in the blob store and records its metadata. The blob is removed again if the metadata cannot be saved.",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "multipart/form-data": {
                            "schema": {
                                "type": "object",
                                "properties": {
                                    "file": {
                                        "type": "string",
                                        "format": "binary",
                                        "description": "File"
                                    }
                                },
                                "required": [
                                    "file"
                                ]
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-attachment_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listAttachmentsManufacturing",
                "summary": "List the files of a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_attachment_Response"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/attachments/{attachmentId}": {
            "delete": {
                "operationId": "deleteAttachmentManufacturing",
                "summary": "Remove a file from a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "attachmentId",
                        "in": "path",
                        "description": "Attachment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/expenses": {
            "get": {
                "operationId": "listExpensesManufacturing",
                "summary": "List the expenses of a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_ledger_ExpenseResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "operationId": "addExpenseManufacturing",
                "summary": "Add an expense to a record",
                "description": "Inserts the expense line and returns the recomputed total_value",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Expense",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/ledger.ExpenseInput"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/expenses/{expenseId}": {
            "delete": {
                "operationId": "deleteExpenseManufacturing",
                "summary": "Delete an expense from a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "expenseId",
                        "in": "path",
                        "description": "Expense ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/items": {
            "post": {
                "operationId": "addManufacturingItem",
                "summary": "Add an ingredient to a batch",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Batch ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Ingredient",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/manufacturing.ItemRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/manufacturing/{id}/items/{itemId}": {
            "delete": {
                "operationId": "deleteManufacturingItem",
                "summary": "Remove an ingredient from a batch",
                "tags": [
                    "manufacturing"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Batch ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "itemId",
                        "in": "path",
                        "description": "Item ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials": {
            "post": {
                "operationId": "createMaterial",
                "summary": "Stock a material in a warehouse",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Material",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/inventory.CreateMaterialRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-inventory_MaterialResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listMaterials",
                "summary": "List warehouse materials",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "warehouse_id",
                        "in": "query",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_inventory_MaterialResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials/names": {
            "post": {
                "operationId": "createMaterialName",
                "summary": "Create a material name",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Material name",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/inventory.NameRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-inventory_NamedResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listMaterialNames",
                "summary": "List material names",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_inventory_NamedResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials/names/{id}": {
            "delete": {
                "operationId": "deleteMaterialName",
                "summary": "Delete a material name",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Material name ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials/units": {
            "post": {
                "operationId": "createUnit",
                "summary": "Create a unit of measure",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Unit",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/inventory.NameRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-inventory_NamedResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listUnits",
                "summary": "List units of measure",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_inventory_NamedResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials/units/{id}": {
            "delete": {
                "operationId": "deleteUnit",
                "summary": "Delete a unit of measure",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Unit ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/materials/{id}": {
            "get": {
                "operationId": "getMaterial",
                "summary": "Get a warehouse material",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Material ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-inventory_MaterialResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "put": {
                "operationId": "updateMaterial",
                "summary": "Update the balances of a warehouse material",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Material ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Balances",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/inventory.UpdateMaterialRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-inventory_MaterialResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteMaterial",
                "summary": "Delete a warehouse material",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Material ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption": {
            "post": {
                "operationId": "createMedicineConsumption",
                "summary": "Record a medicine consumption invoice",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Consumption",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/medication.CreateRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-medication_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listMedicineConsumptions",
                "summary": "List medicine consumption invoices",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "warehouse_id",
                        "in": "query",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_medication_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}": {
            "get": {
                "operationId": "getMedicineConsumption",
                "summary": "Get a medicine consumption invoice",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Consumption ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-medication_Response"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "operationId": "deleteMedicineConsumption",
                "summary": "Delete a medicine consumption invoice",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Consumption ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/attachments": {
            "post": {
                "operationId": "uploadAttachmentMedicineConsumption",
                "summary": "Attach a file to a record",
                "description": "Stores the file body in the blob store and records its metadata. The blob is removed again if the metadata cannot be saved.",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "multipart/form-data": {
                            "schema": {
                                "type": "object",
                                "properties": {
                                    "file": {
                                        "type": "string",
                                        "format": "binary",
                                        "description": "File"
                                    }
                                },
                                "required": [
                                    "file"
                                ]
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-attachment_Response"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listAttachmentsMedicineConsumption",
                "summary": "List the files of a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_attachment_Response"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/attachments/{attachmentId}": {
            "delete": {
                "operationId": "deleteAttachmentMedicineConsumption",
                "summary": "Remove a file from a record",
                "tags": [
                    "attachments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "attachmentId",
                        "in": "path",
                        "description": "Attachment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/expenses": {
            "get": {
                "operationId": "listExpensesMedicineConsumption",
                "summary": "List the expenses of a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_ledger_ExpenseResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "operationId": "addExpenseMedicineConsumption",
                "summary": "Add an expense to a record",
                "description": "Inserts the expense line and returns the recomputed total_value",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Expense",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/ledger.ExpenseInput"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/expenses/{expenseId}": {
            "delete": {
                "operationId": "deleteExpenseMedicineConsumption",
                "summary": "Delete an expense from a record",
                "tags": [
                    "expenses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Record ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "expenseId",
                        "in": "path",
                        "description": "Expense ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/items": {
            "post": {
                "operationId": "addMedicineConsumptionItem",
                "summary": "Add a medicine line",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Consumption ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "requestBody": {
                    "description": "Medicine line",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/medication.ItemRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicine-consumption/{id}/items/{itemId}": {
            "delete": {
                "operationId": "deleteMedicineConsumptionItem",
                "summary": "Remove a medicine line",
                "tags": [
                    "medicine-consumption"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Consumption ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    },
                    {
                        "name": "itemId",
                        "in": "path",
                        "description": "Item ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-ledger_LineChange"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicines": {
            "post": {
                "operationId": "createMedicine",
                "summary": "Create a medicine",
                "tags": [
                    "medicines"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Medicine",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/catalog.CreateMedicineRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-catalog_MedicineResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listMedicines",
                "summary": "List medicines",
                "tags": [
                    "medicines"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_catalog_MedicineResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/medicines/{id}": {
            "delete": {
                "operationId": "deleteMedicine",
                "summary": "Delete a medicine",
                "tags": [
                    "medicines"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Medicine ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/poultry": {
            "post": {
                "operationId": "createPoultryStatus",
                "summary": "Open a poultry batch",
                "tags": [
                    "poultry"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Batch",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/farm.CreatePoultryStatusRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-farm_PoultryStatusResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listPoultryStatuses",
                "summary": "List poultry batches",
                "tags": [
                    "poultry"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "farm_id",
                        "in": "query",
                        "description": "Farm ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_farm_PoultryStatusResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/poultry/{id}": {
            "delete": {
                "operationId": "deletePoultryStatus",
                "summary": "Delete a poultry batch",
                "tags": [
                    "poultry"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Batch ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/system/info": {
            "get": {
                "operationId": "getSystemInfo",
                "summary": "Get system information",
                "description": "Returns basic system information including version and uptime",
                "tags": [
                    "system"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_SystemInfoResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/warehouses": {
            "post": {
                "operationId": "createWarehouse",
                "summary": "Create a warehouse",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "requestBody": {
                    "description": "Warehouse",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/farm.CreateWarehouseRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-farm_WarehouseResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            },
            "get": {
                "operationId": "listWarehouses",
                "summary": "List warehouses",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "farm_id",
                        "in": "query",
                        "description": "Farm ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-array_farm_WarehouseResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/warehouses/{id}": {
            "delete": {
                "operationId": "deleteWarehouse",
                "summary": "Delete a warehouse",
                "tags": [
                    "warehouses"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Warehouse ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_IDData"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "servers": [
        {
            "url": "/api/v1"
        }
    ]
}
`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Farms Backend API",
	Description:      "Poultry farm records: farms, inventory, invoices, manufacturing, medicine consumption and daily reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
